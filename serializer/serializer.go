package serializer

import (
	"strings"

	"github.com/arklib/hstore/errx"
)

type Serializer interface {
	Encode(val any) ([]byte, error)
	Decode(data []byte, val any) error
}

// New returns the codec registered under name (gojson | sonic).
func New(name string) (serialize Serializer, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "gojson", "json":
		serialize = NewGoJson()
	case "sonic":
		serialize = NewSonic()
	default:
		err = errx.Sprintf("unknown serializer: %s", name).WithCode(errx.InputErrCode)
	}
	return
}
