package extract

import (
	"strings"

	"github.com/lyubolp/py2uml/internal/model"
)

// parseAttribute derives a Field from one trimmed attribute-assignment
// line. A missing name match is a hard failure; a missing type annotation
// degrades to an empty type.
func (e *Extractor) parseAttribute(raw string) (model.Field, error) {
	m := e.rules.attributeName.FindStringSubmatch(raw)
	if m == nil {
		return model.Field{}, structural("attribute name", raw)
	}

	// m[1] holds the leading visibility underscores (at most two); the
	// identity of the attribute is the identifier that follows them.
	field := model.Field{
		Name:       m[2],
		Visibility: inferVisibility(raw),
	}

	if t := e.rules.attributeType.FindStringSubmatch(raw); t != nil {
		field.Type = strings.TrimSpace(t[1])
	}

	return field, nil
}

// parseArgument derives a Field from one comma-split argument fragment.
func (e *Extractor) parseArgument(raw string) (model.Field, error) {
	m := e.rules.argumentName.FindStringSubmatch(raw)
	if m == nil {
		return model.Field{}, structural("argument name", raw)
	}

	field := model.Field{
		Name:       m[1],
		Visibility: inferVisibility(raw),
	}

	if t := e.rules.argumentType.FindStringSubmatch(raw); t != nil {
		field.Type = strings.TrimSpace(t[1])
	}

	return field, nil
}

// inferVisibility counts underscore characters in the raw declaration
// text: zero means public, exactly one protected, two or more private.
// The count runs over the whole text, so underscores inside identifiers or
// default values inflate it. That imprecision is a documented property of
// the heuristic, not corrected here.
func inferVisibility(raw string) model.Visibility {
	switch strings.Count(raw, "_") {
	case 0:
		return model.Public
	case 1:
		return model.Protected
	default:
		return model.Private
	}
}
