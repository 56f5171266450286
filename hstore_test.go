package hstore

import (
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serialize(t *testing.T, typ Type, value any) *string {
	t.Helper()
	data, err := Serialize(typ, value)
	require.NoError(t, err)
	return data
}

func deserialize(t *testing.T, typ Type, value string) any {
	t.Helper()
	data, err := Deserialize(typ, &value)
	require.NoError(t, err)
	return data
}

func TestSerializeAbsent(t *testing.T) {
	absent := []any{
		nil,
		[]string(nil),
		map[string]any(nil),
		(*time.Time)(nil),
		(*decimal.Decimal)(nil),
	}
	for _, typ := range append(Types(), Type(99)) {
		for _, value := range absent {
			data, err := Serialize(typ, value)
			require.NoError(t, err)
			assert.Nil(t, data, "%s %T", typ, value)
		}
	}
}

func TestSerializeAbsentSkipsConverter(t *testing.T) {
	called := false
	data, err := Serialize(String, nil, func(any) (string, error) {
		called = true
		return "x", nil
	})
	require.NoError(t, err)
	assert.Nil(t, data)
	assert.False(t, called)
}

func TestDeserializeAbsent(t *testing.T) {
	for _, typ := range Types() {
		data, err := Deserialize(typ, nil)
		require.NoError(t, err)
		switch typ {
		case Array:
			assert.Equal(t, []string{}, data)
		case Hash:
			assert.Equal(t, map[string]any{}, data)
		default:
			assert.Nil(t, data, typ.String())
		}
	}
}

func TestArray(t *testing.T) {
	assert.Equal(t, "a||;||b||;||c", *serialize(t, Array, []string{"a", "b", "c"}))
	assert.Equal(t, "1||;||2", *serialize(t, Array, []any{1, "2"}))
	assert.Equal(t, "", *serialize(t, Array, []string{}))

	_, err := Serialize(Array, "a b")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "serialize array")

	assert.Equal(t, []string{"a", "b", "c"}, deserialize(t, Array, "a||;||b||;||c"))
	assert.Equal(t, []string{"single"}, deserialize(t, Array, "single"))
	assert.Equal(t, []string{}, deserialize(t, Array, ""))
}

func TestHash(t *testing.T) {
	assert.Equal(t, `{"x":1}`, *serialize(t, Hash, map[string]any{"x": 1}))
	assert.Equal(t, `{"a":[1,2],"b":"c"}`, *serialize(t, Hash, map[string]any{"b": "c", "a": []int{1, 2}}))

	assert.Equal(t, map[string]any{"x": float64(1)}, deserialize(t, Hash, `{"x":1}`))
	assert.Equal(t, map[string]any{}, deserialize(t, Hash, `null`))

	_, err := Deserialize(Hash, lo.ToPtr(`{"x":`))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "deserialize hash")
}

func TestTime(t *testing.T) {
	instant := time.Unix(1700000000, 0)
	assert.Equal(t, "1700000000", *serialize(t, Time, instant))
	assert.Equal(t, "1700000000", *serialize(t, Time, &instant))
	assert.Equal(t, "1700000000", *serialize(t, Time, time.Unix(1700000000, 999).In(time.FixedZone("X", 3600))))
	assert.Equal(t, "1700000000", *serialize(t, Time, "1700000000"))
	assert.Equal(t, "1700000000", *serialize(t, Time, "2023-11-14T22:13:20Z"))

	data := deserialize(t, Time, "1700000000")
	require.IsType(t, time.Time{}, data)
	assert.True(t, instant.Equal(data.(time.Time)))
	assert.Equal(t, time.UTC, data.(time.Time).Location())

	_, err := Deserialize(Time, lo.ToPtr("yesterday"))
	var numErr *strconv.NumError
	assert.ErrorAs(t, err, &numErr)
}

func TestBoolean(t *testing.T) {
	assert.Equal(t, "true", *serialize(t, Boolean, true))
	assert.Equal(t, "true", *serialize(t, Boolean, "true"))
	assert.Equal(t, "false", *serialize(t, Boolean, false))
	assert.Equal(t, "false", *serialize(t, Boolean, "yes"))
	assert.Equal(t, "false", *serialize(t, Boolean, 1))

	for _, token := range TrueValues {
		assert.Equal(t, true, deserialize(t, Boolean, token), token)
	}
	for _, token := range []string{"false", "f", "0", "off", "garbage", ""} {
		assert.Equal(t, false, deserialize(t, Boolean, token), token)
	}
}

func TestDate(t *testing.T) {
	day := time.Date(2024, 3, 5, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-05", *serialize(t, Date, day))
	assert.Equal(t, "2024-03-05", *serialize(t, Date, "2024-03-05"))

	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), deserialize(t, Date, "2024-03-05"))

	_, err := Deserialize(Date, lo.ToPtr("not a date"))
	assert.Error(t, err)
}

func TestNumbers(t *testing.T) {
	assert.Equal(t, "42", *serialize(t, Integer, 42))
	assert.Equal(t, "-7", *serialize(t, Integer, int64(-7)))
	assert.Equal(t, "1.5", *serialize(t, Float, 1.5))
	assert.Equal(t, "12.345", *serialize(t, Decimal, decimal.RequireFromString("12.345")))

	assert.Equal(t, int64(42), deserialize(t, Integer, "42"))
	assert.Equal(t, int64(10), deserialize(t, Integer, "010"))
	assert.Equal(t, 1.5, deserialize(t, Float, "1.5"))

	dec := deserialize(t, Decimal, "12.345")
	require.IsType(t, decimal.Decimal{}, dec)
	assert.True(t, decimal.RequireFromString("12.345").Equal(dec.(decimal.Decimal)))

	_, err := Deserialize(Integer, lo.ToPtr("abc"))
	var numErr *strconv.NumError
	assert.ErrorAs(t, err, &numErr)
	assert.Contains(t, err.Error(), "deserialize integer")

	_, err = Deserialize(Float, lo.ToPtr("abc"))
	assert.Error(t, err)
	_, err = Deserialize(Decimal, lo.ToPtr("abc"))
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	assert.Equal(t, "hello", *serialize(t, String, "hello"))
	assert.Equal(t, "", *serialize(t, String, ""))
	assert.Equal(t, "hello", deserialize(t, String, "hello"))
}

func TestUnknownType(t *testing.T) {
	unknown := Type(99)
	assert.Equal(t, "12", *serialize(t, unknown, 12))
	assert.Equal(t, "raw", deserialize(t, unknown, "raw"))
	assert.ErrorIs(t, Validate(unknown), ErrInvalidDataType)
	assert.NoError(t, Validate(Hash))
}

func TestCustomConverter(t *testing.T) {
	upper := func(value any) (string, error) {
		return strings.ToUpper(value.(string)), nil
	}
	data, err := Serialize(String, "abc", upper)
	require.NoError(t, err)
	assert.Equal(t, "ABC", *data)

	lower := func(value string) (any, error) {
		return strings.ToLower(value), nil
	}
	native, err := Deserialize(Integer, lo.ToPtr("ABC"), lower)
	require.NoError(t, err)
	assert.Equal(t, "abc", native)
}

func TestRoundTrip(t *testing.T) {
	values := map[Type]any{
		String:  "hstore",
		Integer: int64(-12),
		Float:   3.25,
		Time:    time.Unix(1700000000, 0).UTC(),
		Boolean: true,
		Array:   []string{"x", "", "y z"},
		Hash:    map[string]any{"n": 1.5, "s": "t", "l": []any{"a"}, "m": map[string]any{"k": true}},
		Date:    time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	for typ, value := range values {
		data, err := Serialize(typ, value)
		require.NoError(t, err)
		native, err := Deserialize(typ, data)
		require.NoError(t, err)
		assert.Equal(t, value, native, typ.String())
	}

	dec := decimal.RequireFromString("-0.000123")
	data, err := Serialize(Decimal, dec)
	require.NoError(t, err)
	native, err := Deserialize(Decimal, data)
	require.NoError(t, err)
	assert.True(t, dec.Equal(native.(decimal.Decimal)))
}

func TestConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			data, err := Serialize(Integer, i)
			assert.NoError(t, err)
			native, err := Deserialize(Integer, data)
			assert.NoError(t, err)
			assert.Equal(t, int64(i), native)
		}(i)
	}
	wg.Wait()
}
