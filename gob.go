package hqvec

import (
	"bytes"
	"encoding/gob"
)

// GobEncode implements gob.GobEncoder. The payload is the backing
// array, so vectors survive a save/load round trip despite the storage
// field being unexported.
func (v Vec[T, A]) GobEncode() ([]byte, error) {
	var buffer bytes.Buffer
	if err := gob.NewEncoder(&buffer).Encode(v.data); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (v *Vec[T, A]) GobDecode(data []byte) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(&v.data)
}
