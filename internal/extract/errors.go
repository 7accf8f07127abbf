package extract

import "fmt"

// StructuralError reports a declaration line that failed to match its
// required pattern. It is fatal to the enclosing block or declaration,
// never to the whole run: callers skip the failing unit and continue.
type StructuralError struct {
	// What names the missing capture, e.g. "class name".
	What string
	// Line is the trimmed declaration text that failed to match.
	Line string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("no %s found in %q", e.What, e.Line)
}

func structural(what, line string) *StructuralError {
	return &StructuralError{What: what, Line: line}
}
