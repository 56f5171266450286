package hstore

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/arklib/hstore/serializer"
)

// Separator joins array elements. Elements must not contain it.
const Separator = "||;||"

// TrueValues are the stored tokens read back as boolean true.
var TrueValues = []string{"1", "t", "T", "true", "TRUE", "on", "ON"}

type (
	SerializeFunc   func(value any) (string, error)
	DeserializeFunc func(value string) (any, error)
)

func DefaultSerializer(value any) (string, error) {
	return cast.ToStringE(value)
}

func DefaultDeserializer(value string) (any, error) {
	return value, nil
}

func serializeArray(value any) (string, error) {
	if str, ok := value.(string); ok {
		return "", fmt.Errorf("unable to cast %q of type string to []string", str)
	}
	elems, err := cast.ToStringSliceE(value)
	if err != nil {
		return "", err
	}
	return strings.Join(elems, Separator), nil
}

func deserializeArray(value string) (any, error) {
	if value == "" {
		return []string{}, nil
	}
	return strings.Split(value, Separator), nil
}

func hashSerializer(codec serializer.Serializer) SerializeFunc {
	return func(value any) (string, error) {
		data, err := codec.Encode(value)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

func hashDeserializer(codec serializer.Serializer) DeserializeFunc {
	return func(value string) (any, error) {
		data := make(map[string]any)
		if err := codec.Decode([]byte(value), &data); err != nil {
			return nil, err
		}
		if data == nil {
			data = make(map[string]any)
		}
		return data, nil
	}
}

func serializeTime(value any) (string, error) {
	if str, ok := value.(string); ok {
		if sec, err := parseInteger(str); err == nil {
			return strconv.FormatInt(sec, 10), nil
		}
	}
	t, err := cast.ToTimeE(value)
	if err != nil {
		return "", err
	}
	return cast.ToString(t.Unix()), nil
}

func deserializeTime(value string) (any, error) {
	sec, err := parseInteger(value)
	if err != nil {
		return nil, err
	}
	return time.Unix(sec, 0).UTC(), nil
}

func serializeBoolean(value any) (string, error) {
	return strconv.FormatBool(cast.ToString(value) == "true"), nil
}

func deserializeBoolean(value string) (any, error) {
	return lo.Contains(TrueValues, value), nil
}

func serializeDate(value any) (string, error) {
	if t, ok := value.(time.Time); ok {
		return t.Format(time.DateOnly), nil
	}
	return cast.ToStringE(value)
}

func deserializeDate(value string) (any, error) {
	return toDate(value)
}

func deserializeInteger(value string) (any, error) {
	return parseInteger(value)
}

func deserializeFloat(value string) (any, error) {
	return cast.ToFloat64E(strings.TrimSpace(value))
}

func deserializeDecimal(value string) (any, error) {
	return decimal.NewFromString(strings.TrimSpace(value))
}

// parseInteger reads base 10 only; cast would read "010" as octal.
func parseInteger(value string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(value), 10, 64)
}

func toDate(value any) (time.Time, error) {
	t, err := cast.ToTimeInDefaultLocationE(value, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
