package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/arklib/hstore"
)

var ErrValueType = errors.New("value type error")

// Field is a typed accessor for one key, shared by every bucket.
type Field[V any] struct {
	store *Store
	key   string
	typ   hstore.Type
}

func Define[V any](s *Store, key string, t hstore.Type) (*Field[V], error) {
	if key == "" {
		return nil, ErrKeyType
	}
	if err := s.registry.Validate(t); err != nil {
		return nil, err
	}
	return &Field[V]{store: s, key: key, typ: t}, nil
}

func (f *Field[V]) Key() string {
	return f.key
}

func (f *Field[V]) Type() hstore.Type {
	return f.typ
}

func (f *Field[V]) Get(ctx context.Context, bucket string) (value V, err error) {
	data, err := f.store.Get(ctx, bucket, f.key, f.typ)
	if err != nil || data == nil {
		return
	}

	value, ok := data.(V)
	if !ok {
		err = fmt.Errorf("%w: %s holds %T, not %T", ErrValueType, f.key, data, value)
	}
	return
}

func (f *Field[V]) Set(ctx context.Context, bucket string, value V) error {
	return f.store.Set(ctx, bucket, f.key, f.typ, value)
}

func (f *Field[V]) Del(ctx context.Context, bucket string) error {
	return f.store.Del(ctx, bucket, f.key)
}
