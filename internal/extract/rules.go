package extract

import "regexp"

// Decorator marker tokens. A marker line is assumed to be immediately
// followed by the method declaration it decorates.
const (
	staticMarker   = "@staticmethod"
	abstractMarker = "@abstractmethod"
)

// Base-list tokens recognized during kind classification, tested in this
// order: abstract before enum before exception.
const (
	abstractBaseName  = "ABC"
	enumBaseName      = "Enum"
	exceptionBaseName = "Exception"
)

const (
	identifierPattern = `[^\d\W]\w*`
	typePattern       = `[^\d\W][\w\[\], ]*`
)

// Rules is the immutable set of compiled extraction patterns. It is
// constructed once and passed to the extractor; there is no package-level
// pattern state.
type Rules struct {
	// Class-related patterns.
	class        *regexp.Regexp
	className    *regexp.Regexp
	classParents *regexp.Regexp

	// Attribute-related patterns.
	attribute     *regexp.Regexp
	attributeName *regexp.Regexp
	attributeType *regexp.Regexp

	// Method-related patterns. The plain-method pattern requires a self
	// receiver, so decorated static methods are only reachable through
	// the marker lookahead.
	method       *regexp.Regexp
	methodName   *regexp.Regexp
	methodArgs   *regexp.Regexp
	methodReturn *regexp.Regexp

	// Argument-related patterns, applied to one comma-split fragment.
	argumentName *regexp.Regexp
	argumentType *regexp.Regexp
}

// DefaultRules returns the standard rule set for conventionally formatted,
// one-statement-per-line Python source.
func DefaultRules() *Rules {
	return &Rules{
		class:        regexp.MustCompile(`^class (.*):`),
		className:    regexp.MustCompile(`^class *([A-Za-z0-9_]*).*:`),
		classParents: regexp.MustCompile(`^class .*\((.*)\)`),

		attribute:     regexp.MustCompile(`^self\.(.*) *=.*`),
		attributeName: regexp.MustCompile(`^self\.(_{0,2})(` + identifierPattern + `)`),
		attributeType: regexp.MustCompile(`^self\.[^:=]*: *([^=]+?) *=`),

		method:       regexp.MustCompile(`^def .*\(self.*\).*:`),
		methodName:   regexp.MustCompile(`^def +(` + identifierPattern + `) *\(`),
		methodArgs:   regexp.MustCompile(`\((.*)\)`),
		methodReturn: regexp.MustCompile(`\) *-> *(` + typePattern + `)`),

		argumentName: regexp.MustCompile(`^(` + identifierPattern + `)`),
		argumentType: regexp.MustCompile(`: *(` + typePattern + `)`),
	}
}
