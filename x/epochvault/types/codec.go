package types

import (
	"encoding/json"
	"fmt"
)

// jsonValueCodec implements cosmossdk.io/collections.ValueCodec[T] for any
// JSON-marshalable T. The module's persisted entities (LatestEpoch, Epoch,
// Stake, StakeUpdateRequest, EpochWinnersMeta, EpochWinnersPage) have no
// protobuf-generated counterpart — there is no codegen toolchain available
// for this module — so every collections.Map/Item uses this codec instead
// of codec.CollValue[T].
type jsonValueCodec[T any] struct {
	name string
}

// NewJSONValueCodec builds a collections.ValueCodec backed by
// encoding/json, named for diagnostics (it shows up in collections schema
// errors and in `Stringify`).
func NewJSONValueCodec[T any](name string) jsonValueCodec[T] {
	return jsonValueCodec[T]{name: name}
}

func (c jsonValueCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValueCodec[T]) Decode(b []byte) (T, error) {
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("%s: %w", c.name, err)
	}
	return v, nil
}

func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValueCodec[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c jsonValueCodec[T]) Stringify(value T) string {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("<%s: unmarshalable: %v>", c.name, err)
	}
	return string(b)
}

func (c jsonValueCodec[T]) ValueType() string {
	return c.name
}
