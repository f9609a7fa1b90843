// Package stmt provides the parameterized-SQL intermediate representation
// shared by every statement builder: a text template holding generic `?`
// placeholders paired with an ordered parameter list. A parameter may itself
// be another *Stmt, which Collapse inlines into the parent, so builders can
// compose arbitrarily deep expression trees by ordinary value substitution.
package stmt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/seam-db/seam/utils"
)

// Placeholder is the generic in-template placeholder byte. It must never
// appear inside a pre-escaped literal produced upstream; the count-based
// collapse cannot tell the difference.
const Placeholder = '?'

// ErrMalformedStatement reports a template whose placeholder count does not
// match its parameter count. This is a programming error in the caller's
// template, never a data condition, and is raised at construction time.
var ErrMalformedStatement = errors.New("placeholder count does not match parameter count")

// Stmt is a SQL text template plus its positionally-matched parameters.
// After Collapse, len(Params) always equals the number of placeholders in
// Text and no parameter is itself a *Stmt.
type Stmt struct {
	Text   string
	Params []any
}

// New builds a statement from a flat template, validating placeholder and
// parameter parity, and collapses any nested statements among the params.
func New(text string, params ...any) (*Stmt, error) {
	if n := strings.Count(text, string(Placeholder)); n != len(params) {
		return nil, fmt.Errorf("stmt: %w: %d placeholder(s), %d parameter(s) in %q",
			ErrMalformedStatement, n, len(params), text)
	}
	s := &Stmt{Text: text, Params: params}
	return s.Collapse(), nil
}

// MustNew is New for templates known correct at compile time.
func MustNew(text string, params ...any) *Stmt {
	s, err := New(text, params...)
	if err != nil {
		panic(err)
	}
	return s
}

// Raw wraps already-valid SQL text carrying no placeholders.
func Raw(text string) *Stmt {
	return &Stmt{Text: text}
}

// Empty returns a statement with no text and no parameters. Appending it to
// another statement is a no-op apart from parameter bookkeeping.
func Empty() *Stmt {
	return &Stmt{}
}

// Value returns a single-placeholder statement binding v.
func Value(v any) *Stmt {
	return &Stmt{Text: string(Placeholder), Params: []any{v}}
}

// Collapse flattens nested statements in place: each placeholder whose
// parameter is itself a *Stmt is replaced by the nested statement's collapsed
// text wrapped in parentheses, and the nested parameters are spliced into
// this statement's parameter list at that position. Collapsing an already
// flat statement leaves it unchanged.
func (s *Stmt) Collapse() *Stmt {
	nested := false
	for _, p := range s.Params {
		if _, ok := p.(*Stmt); ok {
			nested = true
			break
		}
	}
	if !nested {
		return s
	}

	var sb strings.Builder
	flat := make([]any, 0, len(s.Params))
	idx := 0
	for i := 0; i < len(s.Text); i++ {
		c := s.Text[i]
		if c != Placeholder || idx >= len(s.Params) {
			sb.WriteByte(c)
			continue
		}
		p := s.Params[idx]
		idx++
		if sub, ok := p.(*Stmt); ok {
			sub.Collapse()
			sb.WriteByte('(')
			sb.WriteString(sub.Text)
			sb.WriteByte(')')
			flat = append(flat, sub.Params...)
		} else {
			sb.WriteByte(Placeholder)
			flat = append(flat, p)
		}
	}
	s.Text = sb.String()
	s.Params = flat
	return s
}

// Append concatenates b onto a, joining the texts with sep. The separator is
// omitted when either side is empty. Parameters are concatenated in order.
// The result is not collapsed.
func Append(a, b *Stmt, sep string) *Stmt {
	switch {
	case a.Text == "":
		a.Text = b.Text
	case b.Text != "":
		a.Text = a.Text + sep + b.Text
	}
	a.Params = append(a.Params, b.Params...)
	return a
}

// Join folds Append over stmts and collapses the result.
func Join(stmts []*Stmt, sep string) *Stmt {
	out := Empty()
	for _, s := range stmts {
		Append(out, s, sep)
	}
	return out.Collapse()
}

// Merge appends other onto s, returning s for chaining.
func (s *Stmt) Merge(other *Stmt, sep string) *Stmt {
	return Append(s, other, sep)
}

// Parameterize rewrites each generic placeholder in the collapsed text with
// the dialect-specific token produced by placeholder(n), n starting at 1 in
// left-to-right order. This is the seam between the dialect-neutral
// representation and dialect-specific syntax.
func (s *Stmt) Parameterize(placeholder func(n int) string) (string, []any) {
	s.Collapse()
	var sb strings.Builder
	sb.Grow(len(s.Text))
	n := 0
	for i := 0; i < len(s.Text); i++ {
		if s.Text[i] == Placeholder {
			n++
			sb.WriteString(placeholder(n))
			continue
		}
		sb.WriteByte(s.Text[i])
	}
	return sb.String(), s.Params
}

// Fingerprint identifies the statement's shape, not its parameter values.
// Two statements with identical collapsed text share a fingerprint.
func (s *Stmt) Fingerprint() uint64 {
	s.Collapse()
	return utils.FingerprintString(s.Text)
}

// Clone returns an independent copy sharing no mutable state with s.
func (s *Stmt) Clone() *Stmt {
	params := make([]any, len(s.Params))
	copy(params, s.Params)
	return &Stmt{Text: s.Text, Params: params}
}
