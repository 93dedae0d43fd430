package framelog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the payload compressor of a record.
type Compression byte

const (
	CompRaw  Compression = 0x00
	CompLZ4  Compression = 0x03
	CompZstd Compression = 0x04
)

func (c Compression) String() string {
	switch c {
	case CompRaw:
		return "none"
	case CompLZ4:
		return "lz4"
	case CompZstd:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%#x)", byte(c))
	}
}

// ParseCompression accepts "none" (or ""), "lz4" and "zstd".
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(s) {
	case "", "none", "raw":
		return CompRaw, nil
	case "lz4":
		return CompLZ4, nil
	case "zstd":
		return CompZstd, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCompression, s)
	}
}

// compressor holds lazily created codec state; one per Writer or Reader.
type compressor struct {
	zenc    *zstd.Encoder
	zdec    *zstd.Decoder
	scratch bytes.Buffer
	// limit caps a decompressed payload; MaxRecordSize when zero.
	limit uint64
}

func (c *compressor) maxDecoded() uint64 {
	if c.limit == 0 {
		return MaxRecordSize
	}
	return c.limit
}

func (c *compressor) compress(comp Compression, raw []byte) ([]byte, error) {
	switch comp {
	case CompRaw:
		return raw, nil
	case CompZstd:
		if c.zenc == nil {
			enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
			if err != nil {
				return nil, err
			}
			c.zenc = enc
		}
		return c.zenc.EncodeAll(raw, nil), nil
	case CompLZ4:
		c.scratch.Reset()
		zw := lz4.NewWriter(&c.scratch)
		if _, err := zw.Write(raw); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return c.scratch.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, comp)
	}
}

func (c *compressor) decompress(comp Compression, data []byte) ([]byte, error) {
	switch comp {
	case CompRaw:
		return data, nil
	case CompZstd:
		if c.zdec == nil {
			dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(c.maxDecoded()))
			if err != nil {
				return nil, err
			}
			c.zdec = dec
		}
		out, err := c.zdec.DecodeAll(data, nil)
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrRecordTooLarge, err)
		}
		return out, err
	case CompLZ4:
		limit := c.maxDecoded()
		out, err := io.ReadAll(io.LimitReader(lz4.NewReader(bytes.NewReader(data)), int64(limit)+1))
		if err != nil {
			return nil, err
		}
		if uint64(len(out)) > limit {
			return nil, fmt.Errorf("%w: decompressed payload exceeds %d bytes", ErrRecordTooLarge, limit)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, comp)
	}
}

func (c *compressor) close() error {
	var err error
	if c.zenc != nil {
		err = c.zenc.Close()
		c.zenc = nil
	}
	if c.zdec != nil {
		c.zdec.Close()
		c.zdec = nil
	}
	return err
}
