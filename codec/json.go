package codec

import "encoding/json"

type JSON struct{}

func (JSON) Encode(e Entry) ([]byte, error) { return json.Marshal(e) }
func (JSON) Decode(b []byte) (Entry, error) {
	var e Entry
	err := json.Unmarshal(b, &e)
	return e, err
}
