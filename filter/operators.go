package filter

// Operator names accepted inside a condition object, e.g. {"age": {"gt": 21}}.
type Operator string

const (
	OpGt      Operator = "gt"
	OpGte     Operator = "gte"
	OpLt      Operator = "lt"
	OpLte     Operator = "lte"
	OpBetween Operator = "between"
	OpInq     Operator = "inq"
	OpNin     Operator = "nin"
	OpNeq     Operator = "neq"
	OpLike    Operator = "like"
	OpNlike   Operator = "nlike"
	OpRegexp  Operator = "regexp"
)

// sqlOperators maps operator names to their SQL comparison tokens. BETWEEN
// and the set operators render their own operand syntax in the compiler; the
// REGEXP token is dialect-specific and deliberately not normalized here.
var sqlOperators = map[Operator]string{
	OpGt:      ">",
	OpGte:     ">=",
	OpLt:      "<",
	OpLte:     "<=",
	OpBetween: "BETWEEN",
	OpInq:     "IN",
	OpNin:     "NOT IN",
	OpNeq:     "!=",
	OpLike:    "LIKE",
	OpNlike:   "NOT LIKE",
	OpRegexp:  "REGEXP",
}

// SQL returns the SQL token for o, or the empty string for an unknown name.
func (o Operator) SQL() string {
	return sqlOperators[o]
}

// IsOperator reports whether name is a recognized condition operator.
func IsOperator(name string) bool {
	_, ok := sqlOperators[Operator(name)]
	return ok
}
