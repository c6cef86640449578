// Package reflectutils holds utility methods related with reflect package.
package reflectutils

import "reflect"

// IsValueNil checks whether provided Value holds nil.
// Only kinds that can carry nil are inspected, others never hold it.
func IsValueNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Slice, reflect.Func, reflect.Interface:
		return v.IsNil()
	}

	return false
}
