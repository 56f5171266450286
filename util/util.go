package util

import (
	"sort"
	"strings"

	"github.com/spf13/cast"
)

func ForEachMapBySort[V any](in map[string]V, iteratee func(key string, value V)) {
	keys := make([]string, 0, len(in))
	for key := range in {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		iteratee(key, in[key])
	}
}

// MakeStrKey joins the non-empty parts with ":". It returns "" when any part
// cannot be turned into a string.
func MakeStrKey(keys ...any) string {
	newKeys := make([]string, 0, len(keys))
	for _, key := range keys {
		newKey, err := cast.ToStringE(key)
		if err != nil {
			return ""
		}
		if newKey == "" {
			continue
		}
		newKeys = append(newKeys, newKey)
	}
	return strings.Join(newKeys, ":")
}
