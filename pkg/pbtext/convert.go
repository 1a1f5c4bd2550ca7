package pbtext

import (
	"reflect"
	"strconv"
)

// Scalar is the set of types the typed attribute accessors convert to.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~bool | ~string
}

// AttributeAs returns the first attribute named name converted to T.
// Parsing is locale-independent (strconv). It fails with a *ConversionError
// when the attribute is absent or its text does not parse as T.
func AttributeAs[T Scalar](v View, name string) (T, error) {
	var zero T

	raw, ok := v.Attribute(name)
	if !ok {
		return zero, &ConversionError{Name: name, Type: typeName[T](), Err: ErrAttributeNotFound}
	}

	out, err := ParseScalar[T](raw)
	if err != nil {
		return zero, &ConversionError{Name: name, Value: raw, Type: typeName[T](), Err: err}
	}
	return out, nil
}

// AttributeAsOptional is like AttributeAs, but an absent attribute yields
// ok == false and no error. A present but unparsable value still fails.
func AttributeAsOptional[T Scalar](v View, name string) (T, bool, error) {
	var zero T

	raw, ok := v.Attribute(name)
	if !ok {
		return zero, false, nil
	}

	out, err := ParseScalar[T](raw)
	if err != nil {
		return zero, true, &ConversionError{Name: name, Value: raw, Type: typeName[T](), Err: err}
	}
	return out, true, nil
}

// ParseScalar converts raw text to T using strconv. Integers are base 10.
func ParseScalar[T Scalar](raw string) (T, error) {
	var out T
	target := reflect.ValueOf(&out).Elem()

	switch target.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, target.Type().Bits())
		if err != nil {
			return out, err
		}
		target.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, target.Type().Bits())
		if err != nil {
			return out, err
		}
		target.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, target.Type().Bits())
		if err != nil {
			return out, err
		}
		target.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return out, err
		}
		target.SetBool(b)
	case reflect.String:
		target.SetString(raw)
	}

	return out, nil
}

func typeName[T Scalar]() string {
	return reflect.TypeFor[T]().String()
}
