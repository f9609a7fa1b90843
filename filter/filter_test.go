package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmpty(t *testing.T) {
	assert.Nil(t, Parse(nil))
	assert.Nil(t, Parse(map[string]any{}))
}

func TestParseEquality(t *testing.T) {
	exprs := Parse(map[string]any{"name": "John"})
	require.Len(t, exprs, 1)
	assert.Equal(t, KindEquality, exprs[0].Kind)
	assert.Equal(t, "name", exprs[0].Field)
	assert.Equal(t, "John", exprs[0].Value)
}

func TestParseNull(t *testing.T) {
	exprs := Parse(map[string]any{"deleted_at": nil})
	require.Len(t, exprs, 1)
	assert.Equal(t, KindIsNull, exprs[0].Kind)
	assert.Equal(t, "deleted_at", exprs[0].Field)
}

func TestParseCondition(t *testing.T) {
	exprs := Parse(map[string]any{"age": map[string]any{"gt": 21}})
	require.Len(t, exprs, 1)
	assert.Equal(t, KindCondition, exprs[0].Kind)
	assert.Equal(t, OpGt, exprs[0].Op)
	assert.Equal(t, 21, exprs[0].Value)
}

func TestParseUnknownOperatorIsEquality(t *testing.T) {
	val := map[string]any{"almost": 1}
	exprs := Parse(map[string]any{"age": val})
	require.Len(t, exprs, 1)
	assert.Equal(t, KindEquality, exprs[0].Kind)
	assert.Equal(t, val, exprs[0].Value)
}

func TestParseKeysSorted(t *testing.T) {
	exprs := Parse(map[string]any{"b": 2, "a": 1, "c": 3})
	require.Len(t, exprs, 3)
	assert.Equal(t, "a", exprs[0].Field)
	assert.Equal(t, "b", exprs[1].Field)
	assert.Equal(t, "c", exprs[2].Field)
}

func TestParseCombinators(t *testing.T) {
	exprs := Parse(map[string]any{"or": []any{
		map[string]any{"name": "John"},
		map[string]any{"name": "Mary"},
	}})
	require.Len(t, exprs, 1)
	require.Equal(t, KindOr, exprs[0].Kind)
	require.Len(t, exprs[0].Groups, 2)
	assert.Equal(t, "John", exprs[0].Groups[0][0].Value)
	assert.Equal(t, "Mary", exprs[0].Groups[1][0].Value)
}

func TestParseCombinatorTypedSlice(t *testing.T) {
	exprs := Parse(map[string]any{"and": []map[string]any{
		{"a": 1},
		{"b": 2},
	}})
	require.Len(t, exprs, 1)
	require.Equal(t, KindAnd, exprs[0].Kind)
	assert.Len(t, exprs[0].Groups, 2)
}

func TestParseCombinatorMultiKeyClause(t *testing.T) {
	exprs := Parse(map[string]any{"or": []any{
		map[string]any{"a": 1, "b": 2},
	}})
	require.Len(t, exprs, 1)
	require.Len(t, exprs[0].Groups, 1)
	assert.Len(t, exprs[0].Groups[0], 2)
}

func TestParseCombinatorNonSequenceFallsThrough(t *testing.T) {
	// "and" with a scalar value is an ordinary field named "and".
	exprs := Parse(map[string]any{"and": "yes"})
	require.Len(t, exprs, 1)
	assert.Equal(t, KindEquality, exprs[0].Kind)
	assert.Equal(t, "and", exprs[0].Field)
}

func TestParseCombinatorDropsUnusableEntries(t *testing.T) {
	exprs := Parse(map[string]any{"or": []any{
		map[string]any{"a": 1},
		"garbage",
		nil,
		map[string]any{},
	}})
	require.Len(t, exprs, 1)
	require.Equal(t, KindOr, exprs[0].Kind)
	assert.Len(t, exprs[0].Groups, 1)
}

func TestParseNeqNullKeepsOperator(t *testing.T) {
	exprs := Parse(map[string]any{"email": map[string]any{"neq": nil}})
	require.Len(t, exprs, 1)
	assert.Equal(t, KindCondition, exprs[0].Kind)
	assert.Equal(t, OpNeq, exprs[0].Op)
	assert.Nil(t, exprs[0].Value)
}

func TestOperatorSQLTable(t *testing.T) {
	cases := map[Operator]string{
		OpGt: ">", OpGte: ">=", OpLt: "<", OpLte: "<=",
		OpBetween: "BETWEEN", OpInq: "IN", OpNin: "NOT IN",
		OpNeq: "!=", OpLike: "LIKE", OpNlike: "NOT LIKE", OpRegexp: "REGEXP",
	}
	for op, sql := range cases {
		assert.Equal(t, sql, op.SQL(), string(op))
		assert.True(t, IsOperator(string(op)))
	}
	assert.False(t, IsOperator("ilike"))
}
