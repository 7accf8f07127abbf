package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibility_Symbols(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+", Public.String())
	assert.Equal(t, "#", Protected.String())
	assert.Equal(t, "-", Private.String())
}

func TestKind_Keywords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "class", KindClass.Keyword())
	assert.Equal(t, "abstract", KindAbstract.Keyword())
	assert.Equal(t, "enum", KindEnum.Keyword())
	assert.Equal(t, "exception", KindException.Keyword())
}

func TestOption_PresentAndAbsent(t *testing.T) {
	t.Parallel()

	some := Some("str")
	v, ok := some.Get()
	assert.True(t, ok)
	assert.True(t, some.Present())
	assert.Equal(t, "str", v)

	none := None[string]()
	_, ok = none.Get()
	assert.False(t, ok)
	assert.False(t, none.Present())
	assert.Equal(t, "", none.OrZero())
}
