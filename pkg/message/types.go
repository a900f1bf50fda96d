package message

import "reflect"

// Type names reported by TypeOf.
const (
	TypeNil      = "nil"
	TypeBoolean  = "boolean"
	TypeNumber   = "number"
	TypeString   = "string"
	TypeArray    = "array"
	TypeObject   = "object"
	TypeFunction = "function"
)

// TypeOf returns the display type name of value. Numbers of every width
// share one name; anything without a dedicated name reports its Go type.
func TypeOf(value any) string {
	if value == nil {
		return TypeNil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return TypeBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return TypeNumber
	case reflect.String:
		return TypeString
	case reflect.Slice, reflect.Array:
		return TypeArray
	case reflect.Map, reflect.Struct:
		return TypeObject
	case reflect.Func:
		return TypeFunction
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return TypeNil
		}
		switch rv.Elem().Kind() {
		case reflect.Map, reflect.Struct:
			return TypeObject
		}
	}

	return rv.Type().String()
}

// IsArray reports whether value is a slice or array.
func IsArray(value any) bool {
	return TypeOf(value) == TypeArray
}
