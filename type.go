package hstore

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDataType = errors.New("invalid data type")

type Type uint8

const (
	String Type = iota
	Integer
	Float
	Time
	Boolean
	Array
	Hash
	Date
	Decimal
)

var typeNames = [...]string{
	String:  "string",
	Integer: "integer",
	Float:   "float",
	Time:    "time",
	Boolean: "boolean",
	Array:   "array",
	Hash:    "hash",
	Date:    "date",
	Decimal: "decimal",
}

// Types returns every recognized type tag in declaration order.
func Types() []Type {
	types := make([]Type, 0, len(typeNames))
	for i := range typeNames {
		types = append(types, Type(i))
	}
	return types
}

func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range typeNames {
		if n == name {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDataType, name)
}

func (t Type) Valid() bool {
	return int(t) < len(typeNames)
}

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("type(%d)", uint8(t))
	}
	return typeNames[t]
}

func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDataType, t)
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
