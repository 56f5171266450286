package hstore

import (
	"fmt"
	"reflect"

	"github.com/samber/lo"
	"github.com/spf13/cast"

	"github.com/arklib/hstore/serializer"
)

type (
	Option func(*options)

	options struct {
		json          serializer.Serializer
		serializers   map[Type]SerializeFunc
		deserializers map[Type]DeserializeFunc
	}

	// Registry maps type tags to converters. The tables are filled once by
	// NewRegistry and only read afterwards, so a Registry is safe for
	// concurrent use.
	Registry struct {
		serializers   map[Type]SerializeFunc
		deserializers map[Type]DeserializeFunc
	}
)

// WithJSON sets the codec used by the hash type.
func WithJSON(codec serializer.Serializer) Option {
	return func(o *options) {
		o.json = codec
	}
}

// WithSerializer replaces the serializer of t. A nil fn is ignored.
func WithSerializer(t Type, fn SerializeFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.serializers[t] = fn
		}
	}
}

// WithDeserializer replaces the deserializer of t. A nil fn is ignored.
func WithDeserializer(t Type, fn DeserializeFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.deserializers[t] = fn
		}
	}
}

func NewRegistry(opts ...Option) *Registry {
	o := &options{
		serializers:   make(map[Type]SerializeFunc),
		deserializers: make(map[Type]DeserializeFunc),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.json == nil {
		o.json = serializer.NewGoJson()
	}

	serializers := map[Type]SerializeFunc{
		Array:   serializeArray,
		Hash:    hashSerializer(o.json),
		Time:    serializeTime,
		Boolean: serializeBoolean,
		Date:    serializeDate,
	}
	deserializers := map[Type]DeserializeFunc{
		Array:   deserializeArray,
		Hash:    hashDeserializer(o.json),
		Integer: deserializeInteger,
		Float:   deserializeFloat,
		Time:    deserializeTime,
		Boolean: deserializeBoolean,
		Date:    deserializeDate,
		Decimal: deserializeDecimal,
	}

	return &Registry{
		serializers:   lo.Assign(serializers, o.serializers),
		deserializers: lo.Assign(deserializers, o.deserializers),
	}
}

// Validate reports whether t is one of the recognized type tags.
func (r *Registry) Validate(t Type) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidDataType, t)
	}
	return nil
}

// Serialize converts value to its stored form. A nil value (including typed
// nil slices, maps and pointers) yields nil without calling a converter.
// Tags outside the recognized set use DefaultSerializer.
func (r *Registry) Serialize(t Type, value any, custom ...SerializeFunc) (*string, error) {
	if isAbsent(value) {
		return nil, nil
	}

	fn, ok := r.serializers[t]
	if len(custom) > 0 && custom[0] != nil {
		fn, ok = custom[0], true
	}
	if !ok {
		fn = DefaultSerializer
	}

	data, err := fn(indirect(value))
	if err != nil {
		return nil, fmt.Errorf("hstore: serialize %s: %w", t, err)
	}
	return &data, nil
}

// Deserialize converts a stored value back to its native form. A nil value
// yields an empty []string for Array, an empty map for Hash and nil for the
// other types.
func (r *Registry) Deserialize(t Type, value *string, custom ...DeserializeFunc) (any, error) {
	if value == nil {
		return Zero(t), nil
	}

	fn, ok := r.deserializers[t]
	if len(custom) > 0 && custom[0] != nil {
		fn, ok = custom[0], true
	}
	if !ok {
		fn = DefaultDeserializer
	}

	data, err := fn(*value)
	if err != nil {
		return nil, fmt.Errorf("hstore: deserialize %s: %w", t, err)
	}
	return data, nil
}

// TypeCast coerces a raw value (form input, config, CLI argument) into the
// native type of t.
func (r *Registry) TypeCast(t Type, value any) (data any, err error) {
	if isAbsent(value) {
		return nil, nil
	}
	value = indirect(value)

	switch t {
	case String, Hash, Array, Decimal:
		data = value
	case Integer:
		if str, ok := value.(string); ok {
			data, err = parseInteger(str)
		} else {
			data, err = cast.ToInt64E(value)
		}
	case Float:
		data, err = cast.ToFloat64E(value)
	case Time:
		data, err = cast.ToTimeE(value)
	case Date:
		data, err = toDate(value)
	case Boolean:
		data = castBoolean(value)
	default:
		data = value
	}
	if err != nil {
		return nil, fmt.Errorf("hstore: type cast %s: %w", t, err)
	}
	return data, nil
}

// Zero returns the value Deserialize yields for a missing key.
func Zero(t Type) any {
	switch t {
	case Array:
		return []string{}
	case Hash:
		return map[string]any{}
	default:
		return nil
	}
}

func castBoolean(value any) any {
	if b, ok := value.(bool); ok {
		return b
	}
	s := cast.ToString(value)
	if s == "" {
		return nil
	}
	return lo.Contains(TrueValues, s)
}

func isAbsent(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func indirect(value any) any {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	return rv.Interface()
}
