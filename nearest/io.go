package nearest

import (
	"bytes"
	"encoding/gob"
	"io"

	"github.com/humz2k/hqvec/metric"
)

// Save writes the index's points and items as a gob stream.
func (ix *Index[V, U, M]) Save(w io.Writer) error {
	var buffer bytes.Buffer
	enc := gob.NewEncoder(&buffer)
	if err := enc.Encode(ix); err != nil {
		return err
	}

	beg := 0
	byteArray := buffer.Bytes()
	for beg < len(byteArray) {
		n, err := w.Write(byteArray[beg:])
		if err != nil {
			return err
		}
		beg += n
	}

	return nil
}

// LoadIndex reads an index previously written with Save.
func LoadIndex[V any, U any, M metric.Metric[V]](r io.Reader) (*Index[V, U, M], error) {
	ret := &Index[V, U, M]{}
	dec := gob.NewDecoder(r)
	if err := dec.Decode(ret); err != nil {
		return nil, err
	}
	return ret, nil
}
