package util

import (
	"fmt"
	"reflect"

	"github.com/spf13/cast"
)

// SetField assigns value to a struct field, converting it with cast. A nil
// value resets the field to its zero value.
func SetField(fieldValue reflect.Value, value any) error {
	if value == nil {
		fieldValue.SetZero()
		return nil
	}

	rv := reflect.ValueOf(value)
	if rv.Type().AssignableTo(fieldValue.Type()) {
		fieldValue.Set(rv)
		return nil
	}

	switch fieldValue.Kind() {
	case reflect.Pointer:
		elem := reflect.New(fieldValue.Type().Elem())
		if err := SetField(elem.Elem(), value); err != nil {
			return err
		}
		fieldValue.Set(elem)
	case reflect.String:
		stringValue, err := cast.ToStringE(value)
		if err != nil {
			return fmt.Errorf("invalid value type for string: %w", err)
		}
		fieldValue.SetString(stringValue)
	case reflect.Bool:
		boolValue, err := cast.ToBoolE(value)
		if err != nil {
			return fmt.Errorf("invalid value type for bool: %w", err)
		}
		fieldValue.SetBool(boolValue)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		int64Value, err := cast.ToInt64E(value)
		if err != nil {
			return fmt.Errorf("invalid value type for int: %w", err)
		}
		fieldValue.SetInt(int64Value)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		uint64Value, err := cast.ToUint64E(value)
		if err != nil {
			return fmt.Errorf("invalid value type for uint: %w", err)
		}
		fieldValue.SetUint(uint64Value)
	case reflect.Float32, reflect.Float64:
		float64Value, err := cast.ToFloat64E(value)
		if err != nil {
			return fmt.Errorf("invalid value type for float: %w", err)
		}
		fieldValue.SetFloat(float64Value)
	case reflect.Slice:
		return setSliceField(fieldValue, value)
	case reflect.Map:
		return setMapField(fieldValue, value)
	default:
		return fmt.Errorf("unsupported field type: %s", fieldValue.Type())
	}
	return nil
}

func setSliceField(fieldValue reflect.Value, value any) error {
	switch fieldValue.Type().Elem().Kind() {
	case reflect.String:
		stringSlice, err := cast.ToStringSliceE(value)
		if err != nil {
			return fmt.Errorf("invalid value type for []string: %w", err)
		}
		sliceValue := reflect.MakeSlice(fieldValue.Type(), len(stringSlice), len(stringSlice))
		for i, v := range stringSlice {
			sliceValue.Index(i).SetString(v)
		}
		fieldValue.Set(sliceValue)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		intSlice, err := cast.ToIntSliceE(value)
		if err != nil {
			return fmt.Errorf("invalid value type for []int: %w", err)
		}
		sliceValue := reflect.MakeSlice(fieldValue.Type(), len(intSlice), len(intSlice))
		for i, v := range intSlice {
			sliceValue.Index(i).SetInt(int64(v))
		}
		fieldValue.Set(sliceValue)
	default:
		return fmt.Errorf("unsupported slice type: %s", fieldValue.Type())
	}
	return nil
}

func setMapField(fieldValue reflect.Value, value any) error {
	if fieldValue.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("unsupported map type: %s", fieldValue.Type())
	}
	stringMap, err := cast.ToStringMapE(value)
	if err != nil {
		return fmt.Errorf("invalid value type for map: %w", err)
	}

	mapValue := reflect.MakeMapWithSize(fieldValue.Type(), len(stringMap))
	elemType := fieldValue.Type().Elem()
	for k, v := range stringMap {
		elem := reflect.New(elemType).Elem()
		if err = SetField(elem, v); err != nil {
			return err
		}
		mapValue.SetMapIndex(reflect.ValueOf(k).Convert(fieldValue.Type().Key()), elem)
	}
	fieldValue.Set(mapValue)
	return nil
}
