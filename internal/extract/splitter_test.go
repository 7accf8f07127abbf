package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyubolp/py2uml/internal/model"
)

// Test Plan for Block Splitting:
// - A unit with no class declarations yields no blocks
// - Lines preceding the first class declaration are discarded
// - Blank lines inside a block are dropped and never terminate it
// - A non-blank line at the block's own depth closes the block
// - A second top-level class declaration closes the previous block
// - An indented class declaration stays inside the enclosing block
// - A block running to the end of input is emitted

func TestSplitBlocks_NoClasses(t *testing.T) {
	t.Parallel()
	e := New(nil, nil)

	blocks := e.SplitBlocks([]string{
		"import os",
		"",
		"def main():",
		"    pass",
	})

	assert.Empty(t, blocks)
}

func TestSplitBlocks_DiscardsLeadingLines(t *testing.T) {
	t.Parallel()
	e := New(nil, nil)

	blocks := e.SplitBlocks([]string{
		"import os",
		"VERSION = 1",
		"class Dog:",
		"    def bark(self):",
		"        pass",
	})

	require.Len(t, blocks, 1)
	assert.Equal(t, model.ClassBlock{
		"class Dog:",
		"    def bark(self):",
		"        pass",
	}, blocks[0])
}

func TestSplitBlocks_BlankLinesDoNotTerminate(t *testing.T) {
	t.Parallel()
	e := New(nil, nil)

	blocks := e.SplitBlocks([]string{
		"class Dog:",
		"    def bark(self):",
		"        pass",
		"",
		"    def sit(self):",
		"        pass",
	})

	require.Len(t, blocks, 1)
	// The blank line is dropped, both methods belong to the block.
	assert.Equal(t, model.ClassBlock{
		"class Dog:",
		"    def bark(self):",
		"        pass",
		"    def sit(self):",
		"        pass",
	}, blocks[0])
}

func TestSplitBlocks_DedentClosesBlock(t *testing.T) {
	t.Parallel()
	e := New(nil, nil)

	blocks := e.SplitBlocks([]string{
		"class Dog:",
		"    def bark(self):",
		"        pass",
		"def free_function():",
		"    pass",
	})

	require.Len(t, blocks, 1)
	assert.Equal(t, model.ClassBlock{
		"class Dog:",
		"    def bark(self):",
		"        pass",
	}, blocks[0])
}

func TestSplitBlocks_ConsecutiveClasses(t *testing.T) {
	t.Parallel()
	e := New(nil, nil)

	blocks := e.SplitBlocks([]string{
		"class Dog:",
		"    pass",
		"class Cat:",
		"    pass",
	})

	require.Len(t, blocks, 2)
	assert.Equal(t, "class Dog:", blocks[0][0])
	assert.Equal(t, "class Cat:", blocks[1][0])
}

func TestSplitBlocks_NestedClassStaysInEnclosingBlock(t *testing.T) {
	t.Parallel()
	e := New(nil, nil)

	blocks := e.SplitBlocks([]string{
		"class Outer:",
		"    class Inner:",
		"        pass",
		"    def method(self):",
		"        pass",
	})

	// The class pattern is anchored at column zero, so Inner does not
	// start a block of its own.
	require.Len(t, blocks, 1)
	assert.Len(t, blocks[0], 5)
}

func TestSplitBlocks_BlockRunsToEndOfInput(t *testing.T) {
	t.Parallel()
	e := New(nil, nil)

	blocks := e.SplitBlocks([]string{
		"class Dog:",
		"    def bark(self):",
		"        pass",
	})

	require.Len(t, blocks, 1)
	assert.Len(t, blocks[0], 3)
}
