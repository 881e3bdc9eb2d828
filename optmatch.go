package optmatch

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
)

// Handler is called when an option's pattern fully matches a token. It
// receives the submatch slice: groups[0] is the whole token, groups[1:] are
// the capture groups in pattern order.
type Handler func(groups []string)

// Opt is one entry of the option table: a pattern that recognises the option,
// a help string for the usage listing, and the handler to call on a match.
type Opt struct {
	pattern string
	re      *regexp.Regexp
	help    string
	handler Handler
}

// Table is an ordered sequence of options. Order matters: patterns are tested
// in table order and the first full match wins.
type Table []Opt

// NewOpt builds a table entry from a regular expression source, a help string
// and a handler. The pattern must match the whole token to count as a match.
// It panics if the pattern does not compile, which is a programmer error in
// the option table rather than a user input problem.
func NewOpt(pattern, help string, handler Handler) Opt {
	return Opt{
		pattern: pattern,
		// Anchor so a table entry only claims tokens it matches end to end.
		// The non-capturing group keeps the caller's group indices stable.
		re:      regexp.MustCompile(`\A(?:` + pattern + `)\z`),
		help:    help,
		handler: handler,
	}
}

// Pattern returns the pattern source the option was built from.
func (o Opt) Pattern() string { return o.pattern }

// Help returns the option's help string.
func (o Opt) Help() string { return o.help }

// Parser matches argument vectors against an option table. The zero value is
// not usable; construct one with NewParser.
type Parser struct {
	outW    io.Writer
	errW    io.Writer
	program string
	logger  *slog.Logger
	color   bool
	wrap    uint
}

// Option configures a Parser.
type Option func(*Parser)

// WithOutput redirects the usage listing, which defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Parser) { p.outW = w }
}

// WithErrOutput redirects diagnostics, which default to os.Stderr.
func WithErrOutput(w io.Writer) Option {
	return func(p *Parser) { p.errW = w }
}

// WithProgram sets the program name shown in the usage banner. The default is
// the basename of os.Args[0].
func WithProgram(name string) Option {
	return func(p *Parser) { p.program = name }
}

// WithLogger sets the logger for debug breadcrumbs emitted during parsing.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) { p.logger = logger }
}

// WithColor enables a colorized pattern column in the usage listing.
func WithColor(enabled bool) Option {
	return func(p *Parser) { p.color = enabled }
}

// WithWrap wraps help text at the given column in the usage listing. Zero,
// the default, disables wrapping.
func WithWrap(limit uint) Option {
	return func(p *Parser) { p.wrap = limit }
}

// NewParser returns a parser with defaults applied and the given options on
// top.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		outW:    os.Stdout,
		errW:    os.Stderr,
		program: filepath.Base(os.Args[0]),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse matches every token of args (the argument vector without the program
// name) against the table. For each token the table is scanned in order and
// the first option whose pattern fully matches has its handler invoked with
// the capture groups; later options are not consulted for that token. The
// literal token --help requests the usage listing without scanning the table.
// A token matching no option prints "Unrecognised option: <token>" to the
// error writer and also requests usage; parsing still continues across the
// remaining tokens.
//
// It returns true only if every token matched some option and --help was not
// present. On a false return the usage listing has been printed, once, to the
// output writer.
func (p *Parser) Parse(args []string, table Table) bool {
	p.logger.Debug("Option parser started.", "tokens", len(args), "options", len(table))

	showUsage := false
	for _, arg := range args {
		if arg == "--help" {
			p.logger.Debug("Help requested.")
			showUsage = true
			continue
		}

		found := false
		for _, opt := range table {
			groups := opt.re.FindStringSubmatch(arg)
			if groups == nil {
				continue
			}
			p.logger.Debug("Token matched.", "token", arg, "pattern", opt.pattern)
			opt.handler(groups)
			found = true
			break
		}
		if !found {
			p.logger.Debug("Token unrecognised.", "token", arg)
			fmt.Fprintf(p.errW, "Unrecognised option: %s\n", arg)
			showUsage = true
		}
	}

	if showUsage {
		p.writeUsage(table)
	}

	p.logger.Debug("Option parser finished.", "ok", !showUsage)
	return !showUsage
}

// ParseCmdLine parses os.Args[1:] against the table with default parser
// settings. It is the plain entry point for programs that do not need to
// redirect output or tweak the usage rendering.
func ParseCmdLine(table Table) bool {
	return NewParser().Parse(os.Args[1:], table)
}
