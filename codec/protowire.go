package codec

import (
	"time"

	"google.golang.org/protobuf/encoding/protowire"
)

// Protowire frames an Entry as a two-field protobuf message without
// generated code: field 1 (bytes) is the body, field 2 (varint) is the
// generated-at instant in unix nanoseconds. Unknown fields are skipped, so
// the format can grow.
type Protowire struct{}

var _ Codec = Protowire{}

func (Protowire) Encode(e Entry) ([]byte, error) {
	b := protowire.AppendTag(nil, 1, protowire.BytesType)
	b = protowire.AppendBytes(b, e.Body)
	if !e.GeneratedAt.IsZero() {
		b = protowire.AppendTag(b, 2, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(e.GeneratedAt.UnixNano()))
	}
	return b, nil
}

func (Protowire) Decode(b []byte) (Entry, error) {
	var e Entry
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return Entry{}, protowire.ParseError(n)
		}
		b = b[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return Entry{}, protowire.ParseError(n)
			}
			e.Body = append([]byte(nil), v...)
			b = b[n:]
		case num == 2 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return Entry{}, protowire.ParseError(n)
			}
			e.GeneratedAt = time.Unix(0, int64(v)).UTC()
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return Entry{}, protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	return e, nil
}
