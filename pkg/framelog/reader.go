package framelog

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/cancanxinxin/grl/internal/common"
)

// Record is one decoded log entry. Payload is decompressed.
type Record struct {
	Type    RecordType
	Payload []byte
}

// Reader iterates the records of a log. Not safe for concurrent use.
type Reader struct {
	r    *bufio.Reader
	meta Meta
	comp compressor
}

// NewReader reads and validates the header record.
func NewReader(r io.Reader) (*Reader, error) {
	lr := &Reader{r: bufio.NewReader(r)}
	rec, err := lr.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNotHeader
		}
		return nil, err
	}
	if rec.Type != TypeHeader {
		return nil, ErrNotHeader
	}
	if err := decMode.Unmarshal(rec.Payload, &lr.meta); err != nil {
		return nil, fmt.Errorf("framelog: decode header: %w", err)
	}
	if lr.meta.Version > FormatVersion {
		return nil, fmt.Errorf("framelog: unsupported format version %d", lr.meta.Version)
	}
	return lr, nil
}

func (r *Reader) Meta() Meta { return r.meta }

// Next returns the next record, or io.EOF at a clean end of log.
func (r *Reader) Next() (Record, error) {
	var head [4]byte
	if _, err := io.ReadFull(r.r, head[:]); err != nil {
		if err == io.EOF {
			return Record{}, io.EOF
		}
		return Record{}, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	if head[0] != magic0 || head[1] != magic1 {
		return Record{}, ErrBadMagic
	}

	var lenBuf [common.MaxVarintLen]byte
	n := 0
	for {
		c, err := r.r.ReadByte()
		if err != nil {
			return Record{}, fmt.Errorf("%w: length: %v", ErrTruncated, err)
		}
		lenBuf[n] = c
		n++
		if c&0x80 == 0 {
			break
		}
		if n == len(lenBuf) {
			return Record{}, fmt.Errorf("%w: length varint overflow", ErrTruncated)
		}
	}
	size, _ := common.ReadVarUint(lenBuf[:n])
	if size > MaxRecordSize {
		return Record{}, fmt.Errorf("%w: %d bytes", ErrRecordTooLarge, size)
	}

	// The declared size is untrusted; the buffer grows only as bytes arrive.
	var body bytes.Buffer
	if _, err := io.CopyN(&body, r.r, int64(size)); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return Record{}, fmt.Errorf("%w: payload: %v", ErrTruncated, err)
	}
	payload := body.Bytes()
	var tail [4]byte
	if _, err := io.ReadFull(r.r, tail[:]); err != nil {
		return Record{}, fmt.Errorf("%w: crc: %v", ErrTruncated, err)
	}

	crc := crc32.NewIEEE()
	crc.Write(head[2:])
	crc.Write(lenBuf[:n])
	crc.Write(payload)
	if crc.Sum32() != binary.LittleEndian.Uint32(tail[:]) {
		return Record{}, ErrCRCMismatch
	}

	t := RecordType(head[2])
	p, err := r.comp.decompress(Compression(head[3]&compressionMask), payload)
	if err != nil {
		return Record{}, fmt.Errorf("framelog: decompress %s: %w", t, err)
	}
	return Record{Type: t, Payload: p}, nil
}

// Close releases decompressor state. It does not close the underlying reader.
func (r *Reader) Close() error {
	return r.comp.close()
}
