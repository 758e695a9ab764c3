// file: internals/helpers/optional.go
package helper

import (
	"bytes"

	"github.com/bytedance/sonic"
)

// Optional tells a missing JSON key (Set=false) apart from an explicit null
// (Set=true, Value=nil). Used by PATCH bodies.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := sonic.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func Some[T any](v T) Optional[T] { return Optional[T]{Set: true, Value: &v} }
