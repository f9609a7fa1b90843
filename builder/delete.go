package builder

import (
	"github.com/seam-db/seam/schema"
	"github.com/seam-db/seam/stmt"
)

// Delete builds a DELETE constrained by the where predicate. An empty
// predicate deletes every row; that is the caller's call to make.
func (b *Builder) Delete(m *schema.Model, where map[string]any) (string, []any, error) {
	s := stmt.Raw("DELETE FROM " + b.table(m))
	if err := b.mergeWhere(s, m, where); err != nil {
		return "", nil, err
	}
	text, params := b.finalize(s)
	return text, params, nil
}
