// Package query compiles slash-separated paths that select blocks and
// attribute values from a pbtext document.
//
// Syntax:
//
//	path    := ["/"] [segment ("/" segment)*] ["@" attr]
//	segment := name ["[" index "]"]
//	index   := digits | "*"
//
// An unindexed segment selects every matching child; "[n]" selects the
// n-th (0-based) match. A name starting with "[" is read up to its closing
// "]", which allows extension names such as "[pkg.ext]". The attribute after
// "@" is taken verbatim to the end of the path.
package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/protoview/pkg/pbtext"
)

// Sentinel errors for paths used in the wrong position.
var (
	// ErrNoAttribute is returned by Values for a path without an "@attr" terminal.
	ErrNoAttribute = errors.New("path does not select an attribute")

	// ErrAttributeSelector is returned by callers that need a block path.
	ErrAttributeSelector = errors.New("path selects an attribute, not a block")
)

// Step selects children of the current blocks by name.
type Step struct {
	// Name is the block name to match.
	Name string

	// Index selects a single match when Indexed is true.
	Index int

	// Indexed is false for "name" and "name[*]".
	Indexed bool
}

// Path is a compiled query. It is immutable and safe for concurrent use.
type Path struct {
	Steps []Step
	Attr  string
}

// SyntaxError describes a malformed path.
type SyntaxError struct {
	Expr string
	Pos  int
	Msg  string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("query %q: offset %d: %s", e.Expr, e.Pos, e.Msg)
}

// Compile parses expr into a Path.
func Compile(expr string) (*Path, error) {
	p := &parser{expr: expr}
	return p.parse()
}

// MustCompile is like Compile but panics on error.
func MustCompile(expr string) *Path {
	path, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return path
}

// Elements evaluates the element steps from root and returns the selected
// blocks in document order. A path with no steps selects root itself.
func (p *Path) Elements(root pbtext.View) []pbtext.View {
	current := []pbtext.View{root}
	for _, step := range p.Steps {
		var next []pbtext.View
		for _, view := range current {
			matches := view.Elements(step.Name)
			if !step.Indexed {
				next = append(next, matches...)
				continue
			}
			if step.Index < len(matches) {
				next = append(next, matches[step.Index])
			}
		}
		if len(next) == 0 {
			return []pbtext.View{}
		}
		current = next
	}
	return current
}

// Values evaluates the path and returns the selected attribute values of
// every selected block, in document order.
func (p *Path) Values(root pbtext.View) ([]string, error) {
	if p.Attr == "" {
		return nil, ErrNoAttribute
	}
	values := []string{}
	for _, view := range p.Elements(root) {
		values = append(values, view.Attributes(p.Attr)...)
	}
	return values, nil
}

// String returns the canonical form of the path.
func (p *Path) String() string {
	var b strings.Builder
	for _, step := range p.Steps {
		b.WriteByte('/')
		b.WriteString(step.Name)
		if step.Indexed {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(step.Index))
			b.WriteByte(']')
		}
	}
	if p.Attr != "" {
		b.WriteByte('@')
		b.WriteString(p.Attr)
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

type parser struct {
	expr string
	pos  int
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Expr: p.expr, Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parse() (*Path, error) {
	path := &Path{}
	expr := p.expr

	if strings.TrimSpace(expr) == "" {
		return nil, p.errorf("empty path")
	}
	if expr[0] == '/' {
		p.pos++
	}

	for p.pos < len(expr) {
		if expr[p.pos] == '@' {
			p.pos++
			if p.pos == len(expr) {
				return nil, p.errorf("missing attribute name after '@'")
			}
			path.Attr = expr[p.pos:]
			p.pos = len(expr)
			break
		}

		step, err := p.parseStep()
		if err != nil {
			return nil, err
		}
		path.Steps = append(path.Steps, step)

		if p.pos < len(expr) && expr[p.pos] != '/' && expr[p.pos] != '@' {
			return nil, p.errorf("unexpected %q after name", expr[p.pos])
		}
		if p.pos < len(expr) && expr[p.pos] == '/' {
			p.pos++
			if p.pos == len(expr) {
				return nil, p.errorf("trailing '/'")
			}
		}
	}

	return path, nil
}

func (p *parser) parseStep() (Step, error) {
	name, err := p.parseName()
	if err != nil {
		return Step{}, err
	}
	step := Step{Name: name}

	if p.pos >= len(p.expr) || p.expr[p.pos] != '[' {
		return step, nil
	}

	p.pos++
	closing := strings.IndexByte(p.expr[p.pos:], ']')
	if closing < 0 {
		return Step{}, p.errorf("unterminated index")
	}
	index := p.expr[p.pos : p.pos+closing]

	switch {
	case index == "*":
	case index == "":
		return Step{}, p.errorf("empty index")
	default:
		n, err := strconv.Atoi(index)
		if err != nil || n < 0 {
			return Step{}, p.errorf("invalid index %q", index)
		}
		step.Index = n
		step.Indexed = true
	}
	p.pos += closing + 1

	if p.pos < len(p.expr) && p.expr[p.pos] != '/' && p.expr[p.pos] != '@' {
		return Step{}, p.errorf("unexpected %q after index", p.expr[p.pos])
	}
	return step, nil
}

func (p *parser) parseName() (string, error) {
	start := p.pos

	if p.expr[p.pos] == '[' {
		closing := strings.IndexByte(p.expr[p.pos:], ']')
		if closing < 0 {
			return "", p.errorf("unterminated extension name")
		}
		p.pos += closing + 1
		return p.expr[start:p.pos], nil
	}

	for p.pos < len(p.expr) {
		c := p.expr[p.pos]
		if c == '/' || c == '[' || c == '@' {
			break
		}
		if c == ' ' || c == '\t' || c == '\n' {
			return "", p.errorf("whitespace in name")
		}
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf("empty segment")
	}
	return p.expr[start:p.pos], nil
}
