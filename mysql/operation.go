package mysql

import (
	"strings"

	"github.com/zoobzio/sqlgen/internal/types"
)

// Arithmetic operands are always parenthesized so operator precedence is
// structurally unambiguous regardless of nesting depth.

func (r *Renderer) VisitPlus(op types.Plus) string {
	return "(" + r.operation(op.Op1) + ") + (" + r.operation(op.Op2) + ")"
}

func (r *Renderer) VisitMinus(op types.Minus) string {
	return "(" + r.operation(op.Op1) + ") - (" + r.operation(op.Op2) + ")"
}

func (r *Renderer) VisitMultiplies(op types.Multiplies) string {
	return "(" + r.operation(op.Op1) + ") * (" + r.operation(op.Op2) + ")"
}

func (r *Renderer) VisitDivides(op types.Divides) string {
	return "(" + r.operation(op.Op1) + ") / (" + r.operation(op.Op2) + ")"
}

func (r *Renderer) VisitMod(op types.Mod) string {
	return "mod(" + r.operation(op.Op1) + ", " + r.operation(op.Op2) + ")"
}

func (r *Renderer) VisitAbs(op types.Abs) string {
	return "abs(" + r.operation(op.Op1) + ")"
}

func (r *Renderer) VisitCeil(op types.Ceil) string {
	return "ceil(" + r.operation(op.Op1) + ")"
}

func (r *Renderer) VisitFloor(op types.Floor) string {
	return "floor(" + r.operation(op.Op1) + ")"
}

func (r *Renderer) VisitExp(op types.Exp) string {
	return "exp(" + r.operation(op.Op1) + ")"
}

func (r *Renderer) VisitLn(op types.Ln) string {
	return "ln(" + r.operation(op.Op1) + ")"
}

func (r *Renderer) VisitLog2(op types.Log2) string {
	return "log2(" + r.operation(op.Op1) + ")"
}

func (r *Renderer) VisitSqrt(op types.Sqrt) string {
	return "sqrt(" + r.operation(op.Op1) + ")"
}

func (r *Renderer) VisitSin(op types.Sin) string {
	return "sin(" + r.operation(op.Op1) + ")"
}

func (r *Renderer) VisitCos(op types.Cos) string {
	return "cos(" + r.operation(op.Op1) + ")"
}

func (r *Renderer) VisitTan(op types.Tan) string {
	return "tan(" + r.operation(op.Op1) + ")"
}

func (r *Renderer) VisitRound(op types.Round) string {
	return "round(" + r.operation(op.Op1) + ", " + r.operation(op.Op2) + ")"
}

func (r *Renderer) VisitLower(op types.Lower) string {
	return "lower(" + r.operation(op.Op1) + ")"
}

func (r *Renderer) VisitUpper(op types.Upper) string {
	return "upper(" + r.operation(op.Op1) + ")"
}

func (r *Renderer) VisitLength(op types.Length) string {
	return "char_length(" + r.operation(op.Op1) + ")"
}

// MySQL's trim family takes the removal set through the BOTH/LEADING/
// TRAILING ... FROM form rather than a second argument.

func (r *Renderer) VisitTrim(op types.Trim) string {
	return "trim(both " + r.operation(op.Op2) + " from " + r.operation(op.Op1) + ")"
}

func (r *Renderer) VisitLTrim(op types.LTrim) string {
	return "trim(leading " + r.operation(op.Op2) + " from " + r.operation(op.Op1) + ")"
}

func (r *Renderer) VisitRTrim(op types.RTrim) string {
	return "trim(trailing " + r.operation(op.Op2) + " from " + r.operation(op.Op1) + ")"
}

func (r *Renderer) VisitReplace(op types.Replace) string {
	return "replace(" + r.operation(op.Op1) + ", " + r.operation(op.Op2) + ", " +
		r.operation(op.Op3) + ")"
}

// || is not string concatenation in stock MySQL, so concat() it is.
func (r *Renderer) VisitConcat(op types.Concat) string {
	ops := make([]string, len(op.Ops))
	for i, o := range op.Ops {
		ops[i] = r.operation(o)
	}
	return "concat(" + strings.Join(ops, ", ") + ")"
}

func (r *Renderer) VisitYear(op types.Year) string {
	return "year(" + r.operation(op.Op1) + ")"
}

func (r *Renderer) VisitMonth(op types.Month) string {
	return "month(" + r.operation(op.Op1) + ")"
}

func (r *Renderer) VisitDay(op types.Day) string {
	return "dayofmonth(" + r.operation(op.Op1) + ")"
}

func (r *Renderer) VisitHour(op types.Hour) string {
	return "hour(" + r.operation(op.Op1) + ")"
}

func (r *Renderer) VisitMinute(op types.Minute) string {
	return "minute(" + r.operation(op.Op1) + ")"
}

func (r *Renderer) VisitSecond(op types.Second) string {
	return "second(" + r.operation(op.Op1) + ")"
}

// dayofweek counts Sunday as 1; subtracting one matches DOW on the
// PostgreSQL side.
func (r *Renderer) VisitWeekday(op types.Weekday) string {
	return "(dayofweek(" + r.operation(op.Op1) + ") - 1)"
}

func (r *Renderer) VisitUnixepoch(op types.Unixepoch) string {
	return "unix_timestamp(" + r.operation(op.Op1) + ")"
}

// VisitDaysBetween renders datediff, which already compares date parts
// only; argument order is later date first.
func (r *Renderer) VisitDaysBetween(op types.DaysBetween) string {
	return "datediff(" + r.operation(op.Op2) + ", " + r.operation(op.Op1) + ")"
}

// VisitDatePlusDuration renders date_expr + INTERVAL n UNIT + ...,
// left-associative.
func (r *Renderer) VisitDatePlusDuration(op types.DatePlusDuration) string {
	parts := make([]string, 0, len(op.Durations)+1)
	parts = append(parts, r.operation(op.Date))
	for _, dur := range op.Durations {
		parts = append(parts, r.VisitDurationValue(dur))
	}
	return strings.Join(parts, " + ")
}

// VisitCast maps the target through the cast-specific type table; MySQL
// CAST accepts SIGNED/CHAR/DECIMAL spellings, not column type names.
func (r *Renderer) VisitCast(op types.Cast) string {
	return "cast(" + r.operation(op.Op1) + " as " + op.TargetType.AcceptType(castTypes{}) + ")"
}

func (r *Renderer) VisitCoalesce(op types.Coalesce) string {
	ops := make([]string, len(op.Ops))
	for i, o := range op.Ops {
		ops[i] = r.operation(o)
	}
	return "coalesce(" + strings.Join(ops, ", ") + ")"
}

func (r *Renderer) VisitAggregation(agg types.Aggregation) string {
	return agg.AcceptAggregation(r)
}

func (r *Renderer) VisitAvg(agg types.Avg) string {
	return "AVG(" + r.operation(agg.Op) + ")"
}

func (r *Renderer) VisitMax(agg types.Max) string {
	return "MAX(" + r.operation(agg.Op) + ")"
}

func (r *Renderer) VisitMin(agg types.Min) string {
	return "MIN(" + r.operation(agg.Op) + ")"
}

func (r *Renderer) VisitSum(agg types.Sum) string {
	return "SUM(" + r.operation(agg.Op) + ")"
}

// VisitCount renders COUNT(*) when no operand is given; DISTINCT only
// applies to an explicit operand.
func (r *Renderer) VisitCount(agg types.Count) string {
	if agg.Op == nil {
		return "COUNT(*)"
	}
	if agg.Distinct {
		return "COUNT(DISTINCT " + r.operation(agg.Op) + ")"
	}
	return "COUNT(" + r.operation(agg.Op) + ")"
}
