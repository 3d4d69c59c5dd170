package types

// Table is a table reference with an optional schema qualifier.
type Table struct {
	Name   string
	Schema string
}

// Column is a column reference (Name, optional table Alias) or, in DDL
// position, a column definition (Name, Type).
type Column struct {
	Name  string
	Type  ColumnType
	Alias string
}

// WithAlias returns a copy of the column prefixed with a table alias.
func (c Column) WithAlias(alias string) Column {
	c.Alias = alias
	return c
}

func (c Column) AcceptColumnOrValue(v ColumnOrValueVisitor) string { return v.VisitColumn(c) }

func (c Column) AcceptOperation(v OperationVisitor) string { return v.VisitColumn(c) }
