// Package filter defines the dialect-neutral query predicate grammar and the
// parser that lifts the caller-supplied loosely-typed where shape into it.
// The compiler in package builder then works over a closed set of expression
// kinds instead of re-inspecting map shapes at every level.
package filter

import "sort"

// Kind discriminates Expression variants.
type Kind int

const (
	// KindEquality matches a field against a literal or nested fragment.
	KindEquality Kind = iota
	// KindIsNull matches a field against SQL NULL.
	KindIsNull
	// KindCondition applies a named operator to a field and an operand.
	KindCondition
	// KindAnd joins clause groups with AND.
	KindAnd
	// KindOr joins clause groups with OR.
	KindOr
)

// Expression is one node of a parsed where predicate. Field, Op and Value
// are set for the condition kinds. For the combinator kinds, Groups holds
// one entry per nested clause; each entry is that clause's own top-level
// expression list.
type Expression struct {
	Kind   Kind
	Field  string
	Op     Operator
	Value  any
	Groups [][]*Expression
}

// Combinator keys reserved in the where shape.
const (
	KeyAnd = "and"
	KeyOr  = "or"
)

// Parse lifts a loosely-typed where shape into its expression list, one
// entry per key. Field keys are visited in sorted order so the compiled SQL
// text is deterministic regardless of map iteration order. A nil or empty
// map yields nil (an unconditional predicate). Parse never fails: shapes it
// cannot interpret degrade to the nearest tolerated meaning, matching the
// compiler's tolerance policy.
func Parse(where map[string]any) []*Expression {
	if len(where) == 0 {
		return nil
	}

	keys := make([]string, 0, len(where))
	for k := range where {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	exprs := make([]*Expression, 0, len(keys))
	for _, key := range keys {
		exprs = append(exprs, parseKey(key, where[key]))
	}
	return exprs
}

func parseKey(key string, value any) *Expression {
	if key == KeyAnd || key == KeyOr {
		if groups, ok := clauseGroups(value); ok {
			kind := KindAnd
			if key == KeyOr {
				kind = KindOr
			}
			return &Expression{Kind: kind, Groups: groups}
		}
		// A combinator key without a sequence value falls through to
		// regular field handling.
	}

	if value == nil {
		return &Expression{Kind: KindIsNull, Field: key}
	}

	if cond, ok := asCondition(value); ok {
		cond.Field = key
		return cond
	}

	return &Expression{Kind: KindEquality, Field: key, Value: value}
}

// clauseGroups interprets a combinator value as a sequence of nested where
// shapes. Entries that are not maps, and entries that parse to nothing, are
// dropped.
func clauseGroups(value any) ([][]*Expression, bool) {
	var maps []map[string]any
	switch items := value.(type) {
	case []map[string]any:
		maps = items
	case []any:
		for _, item := range items {
			if m, ok := item.(map[string]any); ok {
				maps = append(maps, m)
			}
		}
	default:
		return nil, false
	}

	groups := make([][]*Expression, 0, len(maps))
	for _, m := range maps {
		if g := Parse(m); len(g) > 0 {
			groups = append(groups, g)
		}
	}
	return groups, true
}

// asCondition recognizes an operator object: a single-entry map whose key
// names a known operator. Anything else is treated as a literal equality
// value, including multi-key maps and unknown operator names.
func asCondition(value any) (*Expression, bool) {
	m, ok := value.(map[string]any)
	if !ok || len(m) != 1 {
		return nil, false
	}
	for name, operand := range m {
		if !IsOperator(name) {
			return nil, false
		}
		return &Expression{Kind: KindCondition, Op: Operator(name), Value: operand}, true
	}
	return nil, false
}
