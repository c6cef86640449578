// Package types holds the closed set of data types known to the scripting runtime.
package types

// DataType represents data type.
type DataType string

const (
	Boolean  DataType = "boolean"
	Function DataType = "function"
	Nil      DataType = "nil"
	Number   DataType = "number"
	String   DataType = "string"
	Table    DataType = "table"
)

const (
	// Unknown represents unknown data type.
	Unknown DataType = "unknown"

	// Any represents any data type
	Any DataType = "any"
)

// Mapper is entity that has ability to map data's type into corresponding DataType.
type Mapper interface {
	// Map maps data type.
	Map(data any) DataType
}

// IsValidTableDataType checks whether is valid data type usable inside schema rules.
func (dt DataType) IsValidTableDataType() bool {
	dts := []DataType{String, Number, Boolean, Table, Function}

	return isValidDataType(dts, dt)
}

func isValidDataType(set []DataType, in DataType) bool {
	for _, dt := range set {
		if in == dt {
			return true
		}
	}

	return false
}
