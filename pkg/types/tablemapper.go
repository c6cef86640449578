package types

import (
	"reflect"

	"github.com/wojsza/gmodutils/pkg/reflectutils"
)

// TableTypeMapper is entity that has ability to map underlying Go data type
// into corresponding scripting runtime data type.
type TableTypeMapper struct{}

func NewTableTypeMapper() TableTypeMapper {
	return TableTypeMapper{}
}

// Map maps data underlying type into scripting runtime data type.
// Ints, uints and floats collapse into Number; maps, structs, slices
// and arrays collapse into Table, the way the runtime sees them.
func (m TableTypeMapper) Map(data any) DataType {
	if data == nil {
		return Nil
	}

	v := reflect.ValueOf(data)

	if reflectutils.IsValueNil(v) {
		return Nil
	}

	k := v.Kind()

	if k == reflect.String {
		return String
	}

	if k == reflect.Int64 || k == reflect.Int32 || k == reflect.Int16 ||
		k == reflect.Int8 || k == reflect.Int || k == reflect.Uint ||
		k == reflect.Uint8 || k == reflect.Uint16 || k == reflect.Uint32 ||
		k == reflect.Uint64 || k == reflect.Float32 || k == reflect.Float64 {
		return Number
	}

	if k == reflect.Bool {
		return Boolean
	}

	if k == reflect.Map || k == reflect.Struct || k == reflect.Slice || k == reflect.Array {
		return Table
	}

	if k == reflect.Func {
		return Function
	}

	if !v.IsValid() {
		return Unknown
	}

	return Unknown
}
