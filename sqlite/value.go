package sqlite

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

func (*Renderer) VisitStringValue(val types.StringValue) string {
	return "'" + escapeSingleQuote(val.Val) + "'"
}

func (*Renderer) VisitIntegerValue(val types.IntegerValue) string {
	return strconv.FormatInt(val.Val, 10)
}

func (*Renderer) VisitFloatValue(val types.FloatValue) string {
	return strconv.FormatFloat(val.Val, 'f', -1, 64)
}

func (*Renderer) VisitBooleanValue(val types.BooleanValue) string {
	if val.Val {
		return "1"
	}
	return "0"
}

// VisitDurationValue renders a datetime modifier string. SQLite's
// modifier vocabulary has no 'weeks' or 'milliseconds', and an unknown
// modifier makes datetime() return NULL, so weeks scale to days and
// milliseconds to fractional seconds.
func (*Renderer) VisitDurationValue(val types.DurationValue) string {
	switch val.Unit {
	case types.Weeks:
		return "'" + strconv.FormatInt(val.Val*7, 10) + " days'"
	case types.Milliseconds:
		return "'" + strconv.FormatFloat(float64(val.Val)/1000, 'f', -1, 64) + " seconds'"
	}
	return "'" + strconv.FormatInt(val.Val, 10) + " " + string(val.Unit) + "'"
}

func (*Renderer) VisitTimestampValue(val types.TimestampValue) string {
	return "datetime(" + strconv.FormatInt(val.SecondsSinceUnix, 10) + ", 'unixepoch')"
}
