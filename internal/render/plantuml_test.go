package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lyubolp/py2uml/internal/model"
)

// Test Plan for PlantUML Rendering:
// - No records render the bare start/end markers
// - A full record renders attributes, methods, static and abstract
//   methods in that order, with visibility symbols and type annotations
// - Kind keywords select the block keyword
// - Absent collections emit nothing

func TestClassDiagram_NoRecords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"@startuml", "@enduml"}, ClassDiagram(nil))
}

func TestClassDiagram_FullRecord(t *testing.T) {
	t.Parallel()

	record := model.ClassRecord{
		Name: "Account",
		Kind: model.KindClass,
		Attributes: model.Some([]model.Field{
			{Name: "owner", Visibility: model.Public},
			{Name: "balance", Visibility: model.Protected, Type: "float"},
		}),
		Methods: model.Some([]model.MethodSignature{
			{
				Name:       "deposit",
				Visibility: model.Public,
				Args: model.Some([]model.Field{
					{Name: "self", Visibility: model.Public},
					{Name: "amount", Visibility: model.Public, Type: "float"},
				}),
				Return: model.Some("bool"),
			},
		}),
		StaticMethods: model.Some([]model.MethodSignature{
			{Name: "validate", Visibility: model.Public, Args: model.None[[]model.Field](), Return: model.None[string]()},
		}),
		AbstractMethods: model.Some([]model.MethodSignature{
			{Name: "audit", Visibility: model.Protected, Args: model.None[[]model.Field](), Return: model.None[string]()},
		}),
	}

	assert.Equal(t, []string{
		"@startuml",
		"class Account {",
		"\t+ owner",
		"\t#float balance",
		"\t+deposit( self, float amount): bool",
		"\t{static} +validate()",
		"\t{abstract} #audit()",
		"}",
		"@enduml",
	}, ClassDiagram([]model.ClassRecord{record}))
}

func TestClassDiagram_KindKeywords(t *testing.T) {
	t.Parallel()

	records := []model.ClassRecord{
		{Name: "Shape", Kind: model.KindAbstract},
		{Name: "Color", Kind: model.KindEnum},
		{Name: "ParseError", Kind: model.KindException},
	}

	assert.Equal(t, []string{
		"@startuml",
		"abstract Shape {",
		"}",
		"enum Color {",
		"}",
		"exception ParseError {",
		"}",
		"@enduml",
	}, ClassDiagram(records))
}
