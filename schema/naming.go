package schema

import (
	"strings"
	"unicode"

	pluralizer "github.com/gertd/go-pluralize"
)

// pluralizeClient is a singleton for consistent pluralization behavior.
var pluralizeClient = pluralizer.NewClient()

// NamingStrategy maps model and property names to database identifiers when
// a property declares no explicit column name.
type NamingStrategy interface {
	// ColumnName converts a property name to a column name.
	ColumnName(propertyName string) string
	// TableName converts a model name to a table name.
	TableName(modelName string) string
}

// SnakeCaseNaming is the default strategy: snake_case columns and
// pluralized snake_case tables (Customer -> customers, OrderLine ->
// order_lines).
type SnakeCaseNaming struct {
	// SingularTables disables pluralization of table names.
	SingularTables bool
}

func (n SnakeCaseNaming) ColumnName(propertyName string) string {
	return toSnake(propertyName)
}

func (n SnakeCaseNaming) TableName(modelName string) string {
	name := toSnake(modelName)
	if n.SingularTables {
		return name
	}
	return pluralizeClient.Plural(name)
}

func toSnake(name string) string {
	var sb strings.Builder
	sb.Grow(len(name) + 4)
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// Break before an upper rune that starts a new word, which
			// keeps acronym runs together (HTTPCode -> http_code).
			if i > 0 && (!unicode.IsUpper(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				sb.WriteByte('_')
			}
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
