package spaces

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/hupe1980/spaces/ndarray"
)

// DType names the element type a Box stores its bounds in.
type DType int

const (
	Float32 DType = iota
	Float64
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
)

// DefaultDType is the element type used when none is given.
const DefaultDType = Float32

var dtypeNames = [...]string{
	Float32: "float32",
	Float64: "float64",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
}

func (d DType) String() string {
	if d >= 0 && int(d) < len(dtypeNames) {
		return dtypeNames[d]
	}
	return fmt.Sprintf("Unknown(%d)", int(d))
}

// IsInteger reports whether d is a signed or unsigned integer type.
func (d DType) IsInteger() bool {
	return d >= Int8 && d <= Uint64
}

// ParseDType returns the DType with the given name. The empty string yields
// DefaultDType.
func ParseDType(name string) (DType, error) {
	if name == "" {
		return DefaultDType, nil
	}
	for i, n := range dtypeNames {
		if n == name {
			return DType(i), nil
		}
	}
	return 0, &ErrUnknownDType{Name: name}
}

// DTypeOf returns the DType of T. int and uint map to their 64- or 32-bit
// equivalent depending on the platform.
func DTypeOf[T ndarray.Number]() DType {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Float64:
		return Float64
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Int:
		if strconv.IntSize == 32 {
			return Int32
		}
		return Int64
	case reflect.Uint8:
		return Uint8
	case reflect.Uint16:
		return Uint16
	case reflect.Uint32:
		return Uint32
	case reflect.Uint64:
		return Uint64
	case reflect.Uint:
		if strconv.IntSize == 32 {
			return Uint32
		}
		return Uint64
	default:
		return Float32
	}
}
