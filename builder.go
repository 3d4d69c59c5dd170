package sqlgen

// Col references a column by name.
func Col(name string) Column {
	return Column{Name: name}
}

// ColOn references a column qualified by a table alias.
func ColOn(alias, name string) Column {
	return Column{Name: name, Alias: alias}
}

// Str builds a string literal.
func Str(v string) StringValue {
	return StringValue{Val: v}
}

// Int builds an integer literal.
func Int(v int64) IntegerValue {
	return IntegerValue{Val: v}
}

// Float builds a floating-point literal.
func Float(v float64) FloatValue {
	return FloatValue{Val: v}
}

// Bool builds a boolean literal.
func Bool(v bool) BooleanValue {
	return BooleanValue{Val: v}
}

// Dur builds a duration literal, e.g. Dur(5, Days).
func Dur(count int64, unit DurationUnit) DurationValue {
	return DurationValue{Val: count, Unit: unit}
}

// Ts builds a timestamp literal from seconds since the Unix epoch.
func Ts(secondsSinceUnix int64) TimestampValue {
	return TimestampValue{SecondsSinceUnix: secondsSinceUnix}
}

// Limit wraps an int for use as SelectFrom.Limit.
func Limit(n int) *int {
	return &n
}
