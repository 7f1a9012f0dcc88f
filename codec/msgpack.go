package codec

import "github.com/vmihailenco/msgpack/v5"

// Msgpack serializes entries using vmihailenco/msgpack/v5.
// The zero value is ready to use.
type Msgpack struct{}

func (Msgpack) Encode(e Entry) ([]byte, error) {
	return msgpack.Marshal(e)
}
func (Msgpack) Decode(b []byte) (Entry, error) {
	var e Entry
	err := msgpack.Unmarshal(b, &e)
	return e, err
}
