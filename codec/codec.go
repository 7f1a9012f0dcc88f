// Package codec serializes cache entries to the bytes handed to a Provider.
package codec

import "time"

// Entry is the stored value: the rendered body (generation marker already
// appended by the engine) plus the moment it was produced.
type Entry struct {
	Body        []byte    `json:"body" msgpack:"body" cbor:"1,keyasint"`
	GeneratedAt time.Time `json:"generated_at" msgpack:"generated_at" cbor:"2,keyasint"`
}

// Codec encodes/decodes entries to []byte for storage.
type Codec interface {
	Encode(Entry) ([]byte, error)
	Decode([]byte) (Entry, error)
}
