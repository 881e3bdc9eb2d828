package optmatch

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/mitchellh/go-wordwrap"
)

// writeUsage prints the usage banner and one help line per table entry, in
// table order, followed by a blank line. The default rendering is exactly
//
//	Usage: <program>
//	  <pattern>:\t<help>
//	  ...
//
// WithWrap and WithColor only reshape the help column and recolor the pattern
// column; the line structure stays the same.
func (p *Parser) writeUsage(table Table) {
	fmt.Fprintf(p.outW, "Usage: %s\n", p.program)
	for _, opt := range table {
		pattern := opt.pattern
		if p.color {
			pattern = color.FgCyan.Render(pattern)
		}
		fmt.Fprintf(p.outW, "  %s:\t%s\n", pattern, p.helpColumn(opt.help))
	}
	fmt.Fprintln(p.outW)
}

// helpColumn applies the optional wrap limit to a help string. Continuation
// lines are indented past the pattern column so the wrapped text reads as one
// block.
func (p *Parser) helpColumn(help string) string {
	if p.wrap == 0 {
		return help
	}
	wrapped := wordwrap.WrapString(help, p.wrap)
	return strings.ReplaceAll(wrapped, "\n", "\n  \t")
}
