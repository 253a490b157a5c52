package db

import "strings"

// WhereBuilder accumulates (predicate template, bound value) pairs and joins
// them with AND. Values only ever travel through placeholders; templates are
// fixed strings owned by the repositories.
type WhereBuilder struct {
	conds []string
	args  []any
}

func (b *WhereBuilder) Add(cond string, args ...any) {
	b.conds = append(b.conds, cond)
	b.args = append(b.args, args...)
}

// Clause renders " WHERE a AND b" or "" when no predicate was added.
func (b *WhereBuilder) Clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

func (b *WhereBuilder) Args() []any {
	return b.args
}

func (b *WhereBuilder) Empty() bool {
	return len(b.conds) == 0
}

// Page turns (page, limit) into a LIMIT/OFFSET argument pair with the offset
// computed as (page-1)*limit.
func Page(page, limit int64) (int64, int64) {
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}
