package extract

import (
	"strings"

	"github.com/lyubolp/py2uml/internal/model"
)

// parseMethod derives a MethodSignature from one trimmed method
// declaration. A missing name match is a hard failure; an empty argument
// list and an absent return type both degrade to absent values.
func (e *Extractor) parseMethod(raw string) (model.MethodSignature, error) {
	m := e.rules.methodName.FindStringSubmatch(raw)
	if m == nil {
		return model.MethodSignature{}, structural("method name", raw)
	}

	sig := model.MethodSignature{
		Name:       m[1],
		Visibility: inferVisibility(raw),
		Args:       model.None[[]model.Field](),
		Return:     model.None[string](),
	}

	args, err := e.parseArguments(raw)
	if err != nil {
		return model.MethodSignature{}, err
	}
	if len(args) > 0 {
		sig.Args = model.Some(args)
	}

	if ret := e.parseReturnType(raw); ret != "" {
		sig.Return = model.Some(ret)
	}

	return sig, nil
}

// parseArguments extracts the parenthesized argument list and runs each
// comma-split fragment through the field extractor. The split is a naive
// comma split, so an annotation or default value that itself contains a
// comma (e.g. dict[str, int]) mis-splits. Known limitation, kept as is.
func (e *Extractor) parseArguments(raw string) ([]model.Field, error) {
	m := e.rules.methodArgs.FindStringSubmatch(raw)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return nil, nil
	}

	fragments := strings.Split(m[1], ",")
	args := make([]model.Field, 0, len(fragments))
	for _, fragment := range fragments {
		arg, err := e.parseArgument(strings.TrimSpace(fragment))
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	return args, nil
}

// parseReturnType captures the arrow annotation following the closing
// parenthesis, or an empty string when no arrow is present.
func (e *Extractor) parseReturnType(raw string) string {
	m := e.rules.methodReturn.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
