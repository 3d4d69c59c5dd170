package sqlite

import (
	"strings"

	"github.com/zoobzio/sqlgen/internal/types"
)

func (r *Renderer) VisitAnd(cond types.And) string {
	return "(" + r.condition(cond.Cond1) + ") AND (" + r.condition(cond.Cond2) + ")"
}

func (r *Renderer) VisitOr(cond types.Or) string {
	return "(" + r.condition(cond.Cond1) + ") OR (" + r.condition(cond.Cond2) + ")"
}

func (r *Renderer) VisitNot(cond types.Not) string {
	return "NOT (" + r.condition(cond.Cond) + ")"
}

func (r *Renderer) VisitEqual(cond types.Equal) string {
	return r.operation(cond.Op1) + " = " + r.operation(cond.Op2)
}

func (r *Renderer) VisitNotEqual(cond types.NotEqual) string {
	return r.operation(cond.Op1) + " != " + r.operation(cond.Op2)
}

func (r *Renderer) VisitGreaterThan(cond types.GreaterThan) string {
	return r.operation(cond.Op1) + " > " + r.operation(cond.Op2)
}

func (r *Renderer) VisitGreaterEqual(cond types.GreaterEqual) string {
	return r.operation(cond.Op1) + " >= " + r.operation(cond.Op2)
}

func (r *Renderer) VisitLesserThan(cond types.LesserThan) string {
	return r.operation(cond.Op1) + " < " + r.operation(cond.Op2)
}

func (r *Renderer) VisitLesserEqual(cond types.LesserEqual) string {
	return r.operation(cond.Op1) + " <= " + r.operation(cond.Op2)
}

func (r *Renderer) VisitIsNull(cond types.IsNull) string {
	return r.operation(cond.Op) + " IS NULL"
}

func (r *Renderer) VisitIsNotNull(cond types.IsNotNull) string {
	return r.operation(cond.Op) + " IS NOT NULL"
}

func (r *Renderer) VisitLike(cond types.Like) string {
	return r.operation(cond.Op) + " LIKE " + r.columnOrValue(cond.Pattern)
}

func (r *Renderer) VisitNotLike(cond types.NotLike) string {
	return r.operation(cond.Op) + " NOT LIKE " + r.columnOrValue(cond.Pattern)
}

// VisitIn preserves the caller-given pattern order. An empty list renders
// IN (), which is legal and always false; that is up to the caller.
func (r *Renderer) VisitIn(cond types.In) string {
	return r.operation(cond.Op) + " IN (" + r.patterns(cond.Patterns) + ")"
}

func (r *Renderer) VisitNotIn(cond types.NotIn) string {
	return r.operation(cond.Op) + " NOT IN (" + r.patterns(cond.Patterns) + ")"
}

func (r *Renderer) patterns(patterns []types.ColumnOrValue) string {
	rendered := make([]string, len(patterns))
	for i, pattern := range patterns {
		rendered[i] = r.columnOrValue(pattern)
	}
	return strings.Join(rendered, ", ")
}
