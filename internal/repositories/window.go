package repositories

import (
	"fmt"

	"todoapi/internal/pagination"
)

func orderColumn(f pagination.OrderField) string {
	if f == pagination.OrderFieldUpdatedAt {
		return "updated_at"
	}
	return "created_at"
}

// keysetClauses renders the boundary predicates and ordering for a window
// over table. Boundaries are anchored through a correlated subquery so the
// row comparison uses the anchor row's full sort key (primary column plus
// id tie-break). A cursor whose row no longer exists makes the subquery
// yield NULL, which empties the window instead of erroring.
func keysetClauses(table string, w pagination.Window) (conds []string, args []any, order string) {
	col := orderColumn(w.Order.Field)

	afterOp, beforeOp, dir := ">", "<", "ASC"
	if w.Order.Direction == pagination.OrderDesc {
		afterOp, beforeOp, dir = "<", ">", "DESC"
	}

	anchor := fmt.Sprintf("(SELECT %s, id FROM %s WHERE id = ?)", col, table)
	if w.After != nil {
		conds = append(conds, fmt.Sprintf("(%s, id) %s %s", col, afterOp, anchor))
		args = append(args, *w.After)
	}
	if w.Before != nil {
		conds = append(conds, fmt.Sprintf("(%s, id) %s %s", col, beforeOp, anchor))
		args = append(args, *w.Before)
	}

	order = fmt.Sprintf(" ORDER BY %s %s, id %s", col, dir, dir)
	return conds, args, order
}
