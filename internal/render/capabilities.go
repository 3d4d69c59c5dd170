// Package render holds rendering metadata shared by the dialect packages.
package render

// PlaceholderStyle indicates how a dialect numbers statement parameters.
type PlaceholderStyle int

const (
	PlaceholderDollar   PlaceholderStyle = iota // $1, $2, ...
	PlaceholderQuestion                         // ?, ?, ...
)

// Capabilities describes the DDL and bulk-load features of a dialect.
type Capabilities struct {
	Placeholders    PlaceholderStyle
	NativeEnum      bool // dedicated enum type (CREATE TYPE or inline ENUM)
	EnumPredeclared bool // enum types declared in separate statements before the table
	IdentityColumns bool // GENERATED ALWAYS AS IDENTITY / AUTO_INCREMENT
	BulkCopy        bool // streaming bulk-load protocol distinct from INSERT
	TimeZoneTypes   bool // TIMESTAMP WITH TIME ZONE is distinct from TIMESTAMP
}
