package mysql

import (
	"strconv"
	"strings"

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

// VisitDurationValue renders INTERVAL n UNIT with MySQL's singular unit
// keywords. There is no MILLISECOND unit, so milliseconds scale up to
// MICROSECOND.
func (*Renderer) VisitDurationValue(val types.DurationValue) string {
	count := val.Val
	unit := strings.ToUpper(strings.TrimSuffix(string(val.Unit), "s"))
	if val.Unit == types.Milliseconds {
		count *= 1000
		unit = "MICROSECOND"
	}
	return "INTERVAL " + strconv.FormatInt(count, 10) + " " + unit
}

func (*Renderer) VisitTimestampValue(val types.TimestampValue) string {
	return "from_unixtime(" + strconv.FormatInt(val.SecondsSinceUnix, 10) + ")"
}
