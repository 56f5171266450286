package serializer

import "github.com/bytedance/sonic"

// Sonic uses the std compatible config: map keys are sorted, so the same
// hash always encodes to the same text.
type Sonic struct {
	Serializer
	api sonic.API
}

func (s Sonic) Encode(val any) ([]byte, error) {
	return s.api.Marshal(val)
}

func (s Sonic) Decode(data []byte, val any) error {
	return s.api.Unmarshal(data, val)
}

func NewSonic() *Sonic {
	return &Sonic{api: sonic.ConfigStd}
}
