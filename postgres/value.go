package postgres

import (
	"strconv"

	"github.com/zoobzio/sqlgen/internal/types"
)

// VisitColumn renders a quoted column reference, prefixed with its table
// alias when one is set.
func (*Renderer) VisitColumn(c types.Column) string {
	if c.Alias != "" {
		return c.Alias + "." + quote(c.Name)
	}
	return quote(c.Name)
}

// VisitValue dispatches a literal to its kind-specific rendering.
func (r *Renderer) VisitValue(val types.Value) string {
	return val.AcceptValue(r)
}

// VisitStringValue is the only path that touches quote characters, and it
// always escapes.
func (*Renderer) VisitStringValue(val types.StringValue) string {
	return "'" + escapeSingleQuote(val.Val) + "'"
}

func (*Renderer) VisitIntegerValue(val types.IntegerValue) string {
	return strconv.FormatInt(val.Val, 10)
}

func (*Renderer) VisitFloatValue(val types.FloatValue) string {
	return strconv.FormatFloat(val.Val, 'f', -1, 64)
}

// VisitBooleanValue renders 1/0, like the other numeric kinds.
func (*Renderer) VisitBooleanValue(val types.BooleanValue) string {
	if val.Val {
		return "1"
	}
	return "0"
}

func (*Renderer) VisitDurationValue(val types.DurationValue) string {
	return "INTERVAL '" + strconv.FormatInt(val.Val, 10) + " " + string(val.Unit) + "'"
}

func (*Renderer) VisitTimestampValue(val types.TimestampValue) string {
	return "to_timestamp(" + strconv.FormatInt(val.SecondsSinceUnix, 10) + ")"
}
