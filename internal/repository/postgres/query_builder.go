package postgres

import (
	"fmt"
	"strings"
)

// queryBuilder appends AND-ed predicates to a base SELECT, numbering
// placeholders in the order arguments are added. Values never reach the SQL text.
type queryBuilder struct {
	base       string
	conditions []string
	args       []any
	order      string
}

func newQueryBuilder(base string) *queryBuilder {
	return &queryBuilder{base: base}
}

// where adds a predicate without arguments.
func (b *queryBuilder) where(predicate string) *queryBuilder {
	b.conditions = append(b.conditions, predicate)
	return b
}

// whereArg adds a predicate whose single %s is replaced by the next placeholder.
func (b *queryBuilder) whereArg(predicate string, arg any) *queryBuilder {
	b.args = append(b.args, arg)
	b.conditions = append(b.conditions, fmt.Sprintf(predicate, fmt.Sprintf("$%d", len(b.args))))
	return b
}

// contains adds a case-insensitive substring match on column.
func (b *queryBuilder) contains(column, value string) *queryBuilder {
	return b.whereArg(column+` ILIKE %s ESCAPE '\'`, "%"+escapeLike(value)+"%")
}

func (b *queryBuilder) orderBy(clause string) *queryBuilder {
	b.order = clause
	return b
}

func (b *queryBuilder) build() (string, []any) {
	var sb strings.Builder
	sb.WriteString(b.base)
	if len(b.conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(b.conditions, " AND "))
	}
	if b.order != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(b.order)
	}
	return sb.String(), b.args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
