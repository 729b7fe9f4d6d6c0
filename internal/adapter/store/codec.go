package store

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// zstd frame magic number, used to tell compressed blobs from plain ones.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// Codec optionally compresses stored text with zstd. Decoding accepts both
// compressed and plain blobs, so the setting can change between runs.
type Codec struct {
	compress bool
	encoder  *zstd.Encoder
	decoder  *zstd.Decoder
}

func NewCodec(compress bool) (*Codec, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		encoder.Close()
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	return &Codec{compress: compress, encoder: encoder, decoder: decoder}, nil
}

func (c *Codec) Encode(data []byte) ([]byte, error) {
	if !c.compress {
		return append([]byte(nil), data...), nil
	}
	return c.encoder.EncodeAll(data, nil), nil
}

func (c *Codec) Decode(blob []byte) ([]byte, error) {
	if !bytes.HasPrefix(blob, zstdMagic) {
		return append([]byte(nil), blob...), nil
	}
	out, err := c.decoder.DecodeAll(blob, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	return out, nil
}

func (c *Codec) Close() {
	c.encoder.Close()
	c.decoder.Close()
}
