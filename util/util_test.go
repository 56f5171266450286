package util

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeStrKey(t *testing.T) {
	assert.Equal(t, "hstore:user:1", MakeStrKey("hstore", "user:1"))
	assert.Equal(t, "user:1", MakeStrKey("", "user:1"))
	assert.Equal(t, "7:x", MakeStrKey(7, "x"))
	assert.Equal(t, "", MakeStrKey("a", struct{}{}))
}

func TestForEachMapBySort(t *testing.T) {
	var keys []string
	ForEachMapBySort(map[string]int{"b": 2, "c": 3, "a": 1}, func(key string, _ int) {
		keys = append(keys, key)
	})
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

type target struct {
	Name  string
	Count int32
	Size  uint
	Ratio float32
	On    bool
	Tags  []string
	Nums  []int
	Attrs map[string]string
	Ptr   *int
	Any   any
}

func field(dst *target, name string) reflect.Value {
	return reflect.ValueOf(dst).Elem().FieldByName(name)
}

func TestSetField(t *testing.T) {
	var dst target
	require.NoError(t, SetField(field(&dst, "Name"), 12))
	require.NoError(t, SetField(field(&dst, "Count"), "34"))
	require.NoError(t, SetField(field(&dst, "Size"), int64(5)))
	require.NoError(t, SetField(field(&dst, "Ratio"), "0.5"))
	require.NoError(t, SetField(field(&dst, "On"), "true"))
	require.NoError(t, SetField(field(&dst, "Tags"), []any{"a", 1}))
	require.NoError(t, SetField(field(&dst, "Nums"), []string{"1", "2"}))
	require.NoError(t, SetField(field(&dst, "Attrs"), map[string]any{"k": 1}))
	require.NoError(t, SetField(field(&dst, "Ptr"), int64(9)))
	require.NoError(t, SetField(field(&dst, "Any"), []string{"x"}))

	assert.Equal(t, "12", dst.Name)
	assert.Equal(t, int32(34), dst.Count)
	assert.Equal(t, uint(5), dst.Size)
	assert.Equal(t, float32(0.5), dst.Ratio)
	assert.True(t, dst.On)
	assert.Equal(t, []string{"a", "1"}, dst.Tags)
	assert.Equal(t, []int{1, 2}, dst.Nums)
	assert.Equal(t, map[string]string{"k": "1"}, dst.Attrs)
	require.NotNil(t, dst.Ptr)
	assert.Equal(t, 9, *dst.Ptr)
	assert.Equal(t, []string{"x"}, dst.Any)

	require.NoError(t, SetField(field(&dst, "Name"), nil))
	assert.Empty(t, dst.Name)
}

func TestSetFieldErrors(t *testing.T) {
	var dst target
	assert.Error(t, SetField(field(&dst, "Count"), "many"))
	assert.Error(t, SetField(field(&dst, "On"), "maybe"))

	var ch struct{ C chan int }
	assert.Error(t, SetField(reflect.ValueOf(&ch).Elem().Field(0), 1))
}
