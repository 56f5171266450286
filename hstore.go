// Package hstore converts typed values to and from the plain strings kept in
// a flat text-keyed store such as a PostgreSQL hstore column or a Redis hash.
//
// Nine type tags are recognized: string, integer, float, time, boolean,
// array, hash, date and decimal. Array elements are joined with Separator,
// hashes are stored as JSON, times as Unix seconds and booleans as
// "true"/"false".
package hstore

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the registry used by the package level functions.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

func Serialize(t Type, value any, custom ...SerializeFunc) (*string, error) {
	return defaultRegistry.Serialize(t, value, custom...)
}

func Deserialize(t Type, value *string, custom ...DeserializeFunc) (any, error) {
	return defaultRegistry.Deserialize(t, value, custom...)
}

func TypeCast(t Type, value any) (any, error) {
	return defaultRegistry.TypeCast(t, value)
}

func Validate(t Type) error {
	return defaultRegistry.Validate(t)
}
