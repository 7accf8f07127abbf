package extract

import (
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/lyubolp/py2uml/internal/model"
)

// Extractor turns raw source lines into ClassRecords using a fixed rule
// set. It holds no state across invocations; every call is a pure function
// of its input lines.
type Extractor struct {
	rules  *Rules
	logger log.FieldLogger
}

// New creates an Extractor. A nil rules argument selects DefaultRules and
// a nil logger falls back to the standard logrus logger.
func New(rules *Rules, logger log.FieldLogger) *Extractor {
	if rules == nil {
		rules = DefaultRules()
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Extractor{rules: rules, logger: logger}
}

// ExtractSource splits one source unit into class blocks and assembles a
// ClassRecord per block, preserving block order. A block whose declaration
// line is malformed is skipped and reported through the returned joined
// error; the remaining blocks are still extracted.
func (e *Extractor) ExtractSource(lines []string) ([]model.ClassRecord, error) {
	blocks := e.SplitBlocks(lines)

	records := make([]model.ClassRecord, 0, len(blocks))
	var errs []error
	for _, block := range blocks {
		record, err := e.BuildClass(block)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		records = append(records, record)
	}

	return records, errors.Join(errs...)
}

// BuildClass assembles exactly one ClassRecord from a class block. Only a
// malformed class-declaration line aborts construction; failing attribute
// or method declarations are reported and skipped, and empty collections
// are stored as absent rather than empty.
func (e *Extractor) BuildClass(block model.ClassBlock) (model.ClassRecord, error) {
	if len(block) == 0 {
		return model.ClassRecord{}, structural("class declaration", "")
	}

	declaration := strings.TrimSpace(block[0])
	name, err := e.className(declaration)
	if err != nil {
		return model.ClassRecord{}, err
	}

	record := model.ClassRecord{
		Name:            name,
		Kind:            e.classKind(declaration),
		Attributes:      model.None[[]model.Field](),
		Methods:         model.None[[]model.MethodSignature](),
		StaticMethods:   model.None[[]model.MethodSignature](),
		AbstractMethods: model.None[[]model.MethodSignature](),
	}

	if attrs := e.classAttributes(block); len(attrs) > 0 {
		record.Attributes = model.Some(attrs)
	}
	if methods := e.methods(matchingLines(block, e.rules.method)); len(methods) > 0 {
		record.Methods = model.Some(methods)
	}
	if methods := e.methods(markedDeclarations(block, staticMarker)); len(methods) > 0 {
		record.StaticMethods = model.Some(methods)
	}
	if methods := e.methods(markedDeclarations(block, abstractMarker)); len(methods) > 0 {
		record.AbstractMethods = model.Some(methods)
	}

	return record, nil
}

// className captures the class name from the declaration line. A name is
// required and must be non-empty.
func (e *Extractor) className(declaration string) (string, error) {
	m := e.rules.className.FindStringSubmatch(declaration)
	if m == nil || m[1] == "" {
		return "", structural("class name", declaration)
	}
	return m[1], nil
}

// classKind inspects the optional parenthesized base list of the
// declaration line. Recognized base tokens are matched by substring with
// fixed precedence; no base list or an unrecognized one yields KindClass.
func (e *Extractor) classKind(declaration string) model.Kind {
	m := e.rules.classParents.FindStringSubmatch(declaration)
	if m == nil {
		return model.KindClass
	}

	parents := m[1]
	switch {
	case strings.Contains(parents, abstractBaseName):
		return model.KindAbstract
	case strings.Contains(parents, enumBaseName):
		return model.KindEnum
	case strings.Contains(parents, exceptionBaseName):
		return model.KindException
	default:
		return model.KindClass
	}
}

// classAttributes extracts every attribute-assignment line of the block,
// skipping declarations whose name cannot be captured.
func (e *Extractor) classAttributes(block model.ClassBlock) []model.Field {
	var attrs []model.Field
	for _, raw := range matchingLines(block, e.rules.attribute) {
		attr, err := e.parseAttribute(raw)
		if err != nil {
			e.logger.WithFields(log.Fields{"declaration": raw}).Warn("skipping attribute: ", err)
			continue
		}
		attrs = append(attrs, attr)
	}
	return attrs
}

// methods parses a set of raw method declarations, skipping the malformed
// ones.
func (e *Extractor) methods(raws []string) []model.MethodSignature {
	var sigs []model.MethodSignature
	for _, raw := range raws {
		sig, err := e.parseMethod(raw)
		if err != nil {
			e.logger.WithFields(log.Fields{"declaration": raw}).Warn("skipping method: ", err)
			continue
		}
		sigs = append(sigs, sig)
	}
	return sigs
}
