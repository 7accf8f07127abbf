// Package render turns extracted class records into PlantUML class-diagram
// text. It is a deterministic, table-driven formatter: all layout decisions
// live in the fixed marker constants below.
package render

import (
	"fmt"
	"strings"

	"github.com/lyubolp/py2uml/internal/model"
)

const (
	startMarker = "@startuml"
	endMarker   = "@enduml"

	staticMarker   = "{static}"
	abstractMarker = "{abstract}"
)

// ClassDiagram renders the ordered class records into PlantUML lines,
// wrapped in the fixed start/end markers. Record order is preserved.
func ClassDiagram(records []model.ClassRecord) []string {
	lines := []string{startMarker}
	for _, record := range records {
		lines = append(lines, renderClass(record)...)
	}
	return append(lines, endMarker)
}

// renderClass emits one `<kind> <name> {` block with the record's
// attributes, methods, static methods and abstract methods, in that order.
// Absent collections emit nothing.
func renderClass(record model.ClassRecord) []string {
	lines := []string{fmt.Sprintf("%s %s {", record.Kind.Keyword(), record.Name)}

	if attrs, ok := record.Attributes.Get(); ok {
		for _, attr := range attrs {
			lines = append(lines, "\t"+renderAttribute(attr))
		}
	}
	if methods, ok := record.Methods.Get(); ok {
		for _, method := range methods {
			lines = append(lines, "\t"+renderMethod(method))
		}
	}
	if methods, ok := record.StaticMethods.Get(); ok {
		for _, method := range methods {
			lines = append(lines, "\t"+staticMarker+" "+renderMethod(method))
		}
	}
	if methods, ok := record.AbstractMethods.Get(); ok {
		for _, method := range methods {
			lines = append(lines, "\t"+abstractMarker+" "+renderMethod(method))
		}
	}

	return append(lines, "}")
}

// renderAttribute emits `<visibility-symbol><type> <name>`. The type is
// rendered as-is and may be empty.
func renderAttribute(attr model.Field) string {
	return fmt.Sprintf("%s%s %s", attr.Visibility, attr.Type, attr.Name)
}

// renderMethod emits `<visibility-symbol><name>(<type> <arg>, ...)` with
// an optional `: <returnType>` suffix. Arguments keep extraction order.
func renderMethod(method model.MethodSignature) string {
	var args []string
	if fields, ok := method.Args.Get(); ok {
		for _, arg := range fields {
			args = append(args, fmt.Sprintf("%s %s", arg.Type, arg.Name))
		}
	}

	line := fmt.Sprintf("%s%s(%s)", method.Visibility, method.Name, strings.Join(args, ", "))
	if ret, ok := method.Return.Get(); ok {
		line += ": " + ret
	}
	return line
}
