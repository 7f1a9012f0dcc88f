package codec

// Raw is the identity codec and the default: stored bytes ARE the marked
// body, verbatim. The generation marker embedded in the body is the only
// metadata and it is opaque - Decode never tries to strip or parse it, and
// GeneratedAt is lost (zero) on the way back. Raw can never fail to decode,
// so the engine's self-heal path stays idle with it.
type Raw struct{}

func (Raw) Encode(e Entry) ([]byte, error) { return e.Body, nil }
func (Raw) Decode(b []byte) (Entry, error) { return Entry{Body: b}, nil }
