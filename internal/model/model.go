package model

// Visibility classifies a declaration as public, protected or private.
// It is inferred from the underscore count of the raw declaration text,
// never from surrounding context.
type Visibility int

const (
	Public Visibility = iota
	Protected
	Private
)

// String returns the PlantUML symbol for the visibility.
func (v Visibility) String() string {
	switch v {
	case Protected:
		return "#"
	case Private:
		return "-"
	default:
		return "+"
	}
}

// Kind is the closed set of class categories. Base-list scanning assigns
// them with fixed precedence: Abstract before Enum before Exception,
// falling back to Class.
type Kind int

const (
	KindClass Kind = iota
	KindAbstract
	KindEnum
	KindException
)

// Keyword returns the PlantUML block keyword for the kind.
func (k Kind) Keyword() string {
	switch k {
	case KindAbstract:
		return "abstract"
	case KindEnum:
		return "enum"
	case KindException:
		return "exception"
	default:
		return "class"
	}
}

// Field is a named, typed declaration site: a class attribute or a method
// argument. The two reuse the same representation so visibility and type
// extraction logic is shared.
type Field struct {
	Name       string
	Visibility Visibility
	// Type is the colon-annotation text, empty when the declaration
	// carries no annotation.
	Type string
}

// MethodSignature describes one extracted method declaration.
type MethodSignature struct {
	Name       string
	Visibility Visibility
	Args       Option[[]Field]
	Return     Option[string]
}

// ClassRecord is the aggregate produced for one class block. It is
// constructed once by the assembler and immutable afterwards; the name is
// derived from the first line of the block and never recomputed.
//
// A method declared abstract is picked up by both the plain-method scan
// and the abstract-method scan, so it appears in Methods and
// AbstractMethods alike. That duplication is deliberate.
type ClassRecord struct {
	Name            string
	Kind            Kind
	Attributes      Option[[]Field]
	Methods         Option[[]MethodSignature]
	StaticMethods   Option[[]MethodSignature]
	AbstractMethods Option[[]MethodSignature]
}

// ClassBlock is the ordered raw line range belonging to exactly one class,
// starting with its declaration line.
type ClassBlock []string
