package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"github.com/arklib/hstore"
	"github.com/arklib/hstore/util"
)

var ErrKeyType = errors.New("key type error")

type (
	// Driver is a flat text-keyed store. Get returns nil, nil for a missing
	// key.
	Driver interface {
		Get(ctx context.Context, bucket, key string) (*string, error)
		Set(ctx context.Context, bucket, key string, value string) error
		Del(ctx context.Context, bucket, key string) error
		GetAll(ctx context.Context, bucket string) (map[string]string, error)
	}

	Option func(*Store)

	Store struct {
		driver   Driver
		registry *hstore.Registry
		logger   hlog.FullLogger
	}
)

func WithRegistry(registry *hstore.Registry) Option {
	return func(s *Store) {
		s.registry = registry
	}
}

func WithLogger(logger hlog.FullLogger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func New(driver Driver, opts ...Option) *Store {
	s := &Store{driver: driver}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = hstore.DefaultRegistry()
	}
	if s.logger == nil {
		s.logger = hlog.DefaultLogger()
	}
	return s
}

func (s *Store) Registry() *hstore.Registry {
	return s.registry
}

// Set stores value under key. A nil value removes the key.
func (s *Store) Set(ctx context.Context, bucket, key string, t hstore.Type, value any) error {
	if err := s.check(bucket, key, t); err != nil {
		return err
	}

	data, err := s.registry.Serialize(t, value)
	if err != nil {
		return err
	}
	if data == nil {
		return s.Del(ctx, bucket, key)
	}

	err = s.driver.Set(ctx, bucket, key, *data)
	if err != nil {
		s.logger.CtxDebugf(ctx, "[hstore.set] bucket: %s, key: %s, error: %v", bucket, key, err)
	}
	return err
}

// Get loads key and converts it to the native form of t. Missing keys yield
// hstore.Zero(t).
func (s *Store) Get(ctx context.Context, bucket, key string, t hstore.Type) (any, error) {
	if err := s.check(bucket, key, t); err != nil {
		return nil, err
	}

	data, err := s.driver.Get(ctx, bucket, key)
	if err != nil {
		s.logger.CtxDebugf(ctx, "[hstore.get] bucket: %s, key: %s, error: %v", bucket, key, err)
		return nil, err
	}
	return s.registry.Deserialize(t, data)
}

func (s *Store) Del(ctx context.Context, bucket, key string) error {
	if bucket == "" || key == "" {
		return ErrKeyType
	}

	err := s.driver.Del(ctx, bucket, key)
	if err != nil {
		s.logger.CtxDebugf(ctx, "[hstore.del] bucket: %s, key: %s, error: %v", bucket, key, err)
	}
	return err
}

// Dump decodes every key of bucket. Keys missing from types decode as
// strings; declared keys missing from the bucket get their zero value.
func (s *Store) Dump(ctx context.Context, bucket string, types map[string]hstore.Type) (map[string]any, error) {
	if bucket == "" {
		return nil, ErrKeyType
	}

	raw, err := s.driver.GetAll(ctx, bucket)
	if err != nil {
		s.logger.CtxDebugf(ctx, "[hstore.dump] bucket: %s, error: %v", bucket, err)
		return nil, err
	}

	result := make(map[string]any, len(raw))
	for key, value := range raw {
		t, ok := types[key]
		if !ok {
			t = hstore.String
		}
		data, err := s.registry.Deserialize(t, &value)
		if err != nil {
			return nil, fmt.Errorf("key %s: %w", key, err)
		}
		result[key] = data
	}
	for key, t := range types {
		if _, ok := result[key]; !ok {
			result[key] = hstore.Zero(t)
		}
	}
	return result, nil
}

// Bind decodes bucket into the struct pointed to by dst. Fields are picked
// by an `hstore:"key,type"` tag; the type defaults to string.
func (s *Store) Bind(ctx context.Context, bucket string, dst any) error {
	valueOf := reflect.ValueOf(dst)
	if valueOf.Kind() != reflect.Pointer || valueOf.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("bind target must be a struct pointer, got %T", dst)
	}
	valueOf = valueOf.Elem()
	typeOf := valueOf.Type()

	types := make(map[string]hstore.Type)
	fields := make(map[string]int)
	for i := 0; i < typeOf.NumField(); i++ {
		key, t, ok, err := parseTag(typeOf.Field(i).Tag.Get("hstore"))
		if err != nil {
			return fmt.Errorf("field %s: %w", typeOf.Field(i).Name, err)
		}
		if !ok {
			continue
		}
		if !typeOf.Field(i).IsExported() {
			return fmt.Errorf("field %s: unexported", typeOf.Field(i).Name)
		}
		types[key] = t
		fields[key] = i
	}

	data, err := s.Dump(ctx, bucket, types)
	if err != nil {
		return err
	}

	for key, i := range fields {
		err = util.SetField(valueOf.Field(i), data[key])
		if err != nil {
			return fmt.Errorf("field %s: %w", typeOf.Field(i).Name, err)
		}
	}
	return nil
}

func (s *Store) check(bucket, key string, t hstore.Type) error {
	if bucket == "" || key == "" {
		return ErrKeyType
	}
	return s.registry.Validate(t)
}

func parseTag(tag string) (key string, t hstore.Type, ok bool, err error) {
	if tag == "" || tag == "-" {
		return
	}

	key, typeName, _ := strings.Cut(tag, ",")
	if key == "" {
		return
	}
	if typeName != "" {
		t, err = hstore.ParseType(typeName)
		if err != nil {
			return
		}
	}
	return key, t, true, nil
}
