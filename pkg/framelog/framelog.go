// Package framelog stores finished frame buffers as an append-only log of
// checksummed records.
//
// Record layout (little-endian):
//
//	magic "FT" (2B) | type (1B) | flags (1B) | uvarint length | payload | CRC32 (4B)
//
// The CRC covers type through payload. The low nibble of flags names the
// payload compressor. The first record of a log is always a header whose
// payload is a CBOR-encoded Meta.
package framelog

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/fxamacker/cbor/v2"

	"github.com/cancanxinxin/grl/internal/common"
)

const (
	magic0 = 'F'
	magic1 = 'T'

	// FormatVersion is written into every header.
	FormatVersion = 1

	// SchemaFrame names the root table of TypeFrame payloads.
	SchemaFrame = "grl.flatbuffer.FusionTrackFrame"

	// MaxRecordSize bounds a single payload as stored on disk.
	MaxRecordSize = 1 << 31

	compressionMask = 0x0F
)

var (
	ErrBadMagic           = errors.New("framelog: bad record magic")
	ErrCRCMismatch        = errors.New("framelog: crc mismatch")
	ErrTruncated          = errors.New("framelog: truncated record")
	ErrRecordTooLarge     = errors.New("framelog: record too large")
	ErrNotHeader          = errors.New("framelog: log does not start with a header")
	ErrUnknownCompression = errors.New("framelog: unknown compression")
)

type RecordType byte

const (
	TypeHeader     RecordType = 0x01
	TypeFrame      RecordType = 0x02
	TypeParameters RecordType = 0x03
)

func (t RecordType) String() string {
	switch t {
	case TypeHeader:
		return "header"
	case TypeFrame:
		return "frame"
	case TypeParameters:
		return "parameters"
	default:
		return fmt.Sprintf("type(%#x)", byte(t))
	}
}

// Meta describes a log. It is written once, uncompressed, as the header.
type Meta struct {
	Version     uint16 `cbor:"version"`
	SessionID   string `cbor:"session_id"`
	Device      string `cbor:"device,omitempty"`
	Schema      string `cbor:"schema"`
	Compression string `cbor:"compression"`
	// Created is Unix nanoseconds.
	Created int64 `cbor:"created"`
}

// encMode uses Core Deterministic Encoding so equal headers are equal bytes.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("framelog: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("framelog: CBOR decoder initialization failed: " + err.Error())
	}
}

func appendRecord(dst []byte, t RecordType, flags byte, payload []byte) []byte {
	start := len(dst)
	dst = append(dst, magic0, magic1, byte(t), flags)
	dst = common.WriteVarUintTo(dst, uint64(len(payload)))
	dst = append(dst, payload...)
	crc := crc32.ChecksumIEEE(dst[start+2:])
	return binary.LittleEndian.AppendUint32(dst, crc)
}
