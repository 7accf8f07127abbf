package extract

import (
	"strings"

	"github.com/lyubolp/py2uml/internal/model"
)

// SplitBlocks partitions the ordered line sequence of one source unit into
// one ClassBlock per top-level class declaration. A block starts at a line
// matching the class-declaration pattern and ends at the next non-blank
// line whose indentation depth is less than or equal to the depth recorded
// at block start. Blank lines never terminate a block. Lines preceding the
// first class declaration are discarded; a unit with no class declarations
// yields nil.
//
// The class pattern is anchored at column zero, so an indented (nested)
// class declaration stays inside the enclosing block rather than starting
// its own.
func (e *Extractor) SplitBlocks(lines []string) []model.ClassBlock {
	var blocks []model.ClassBlock
	var current model.ClassBlock

	startDepth := 0
	active := false

	for _, line := range lines {
		if e.rules.class.MatchString(line) {
			if active {
				blocks = append(blocks, current)
			}
			current = model.ClassBlock{line}
			startDepth = indentationDepth(line)
			active = true
			continue
		}

		if !active {
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		if indentationDepth(line) > startDepth {
			current = append(current, line)
			continue
		}

		// Non-blank line back at (or above) the block's own depth.
		blocks = append(blocks, current)
		current = nil
		active = false
	}

	if active {
		blocks = append(blocks, current)
	}

	return blocks
}

// indentationDepth counts the leading whitespace characters of a line.
func indentationDepth(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}
