package postgres

import (
	"fmt"
	"strings"

	"github.com/dtroode/listkeeper-server/internal/model"
)

// scope describes how a model.Filter maps onto a table.
type scope struct {
	ownerColumn string
	listColumn  string
	nameColumn  string
	orderBy     string
}

// buildScopedQuery appends the owner, list, search, ordering and paging clauses to base.
func buildScopedQuery(base string, sc scope, f model.Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	conds = append(conds, fmt.Sprintf("%s = %s", sc.ownerColumn, arg(f.OwnerID)))
	if sc.listColumn != "" {
		conds = append(conds, fmt.Sprintf("%s = %s", sc.listColumn, arg(f.ListID)))
	}
	if f.Search != "" {
		conds = append(conds, fmt.Sprintf(`%s ILIKE %s ESCAPE '\'`, sc.nameColumn, arg("%"+escapeLike(f.Search)+"%")))
	}

	p := f.Pagination.Normalize()

	var b strings.Builder
	b.WriteString(base)
	b.WriteString(" WHERE ")
	b.WriteString(strings.Join(conds, " AND "))
	b.WriteString(" ORDER BY ")
	b.WriteString(sc.orderBy)
	b.WriteString(" LIMIT ")
	b.WriteString(arg(p.Limit))
	b.WriteString(" OFFSET ")
	b.WriteString(arg(p.Offset))

	return b.String(), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
