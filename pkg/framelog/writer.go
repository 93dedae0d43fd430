package framelog

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

type Options struct {
	Compression Compression
	// Device is a free-form label stored in the header, e.g. a serial number.
	Device string
	// Now stamps the header; time.Now when nil.
	Now func() time.Time
}

// Writer appends records to an underlying io.Writer. Not safe for
// concurrent use.
type Writer struct {
	w    io.Writer
	opts Options
	meta Meta
	comp compressor
	rec  []byte
}

// NewWriter writes the header record to w and returns a Writer for the
// frames that follow.
func NewWriter(w io.Writer, opts Options) (*Writer, error) {
	switch opts.Compression {
	case CompRaw, CompLZ4, CompZstd:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, opts.Compression)
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	lw := &Writer{
		w:    w,
		opts: opts,
		meta: Meta{
			Version:     FormatVersion,
			SessionID:   uuid.NewString(),
			Device:      opts.Device,
			Schema:      SchemaFrame,
			Compression: opts.Compression.String(),
			Created:     now().UnixNano(),
		},
	}
	payload, err := encMode.Marshal(lw.meta)
	if err != nil {
		return nil, fmt.Errorf("framelog: encode header: %w", err)
	}
	lw.rec = appendRecord(lw.rec[:0], TypeHeader, byte(CompRaw), payload)
	if _, err := w.Write(lw.rec); err != nil {
		return nil, fmt.Errorf("framelog: write header: %w", err)
	}
	return lw, nil
}

func (w *Writer) Meta() Meta { return w.meta }

// WriteFrame appends a finished FusionTrackFrame buffer.
func (w *Writer) WriteFrame(buf []byte) error {
	return w.write(TypeFrame, buf)
}

// WriteParameters appends a finished FusionTrackParameters buffer.
func (w *Writer) WriteParameters(buf []byte) error {
	return w.write(TypeParameters, buf)
}

func (w *Writer) write(t RecordType, payload []byte) error {
	p, err := w.comp.compress(w.opts.Compression, payload)
	if err != nil {
		return fmt.Errorf("framelog: compress %s: %w", t, err)
	}
	if uint64(len(p)) > MaxRecordSize {
		return fmt.Errorf("%w: %d bytes", ErrRecordTooLarge, len(p))
	}
	w.rec = appendRecord(w.rec[:0], t, byte(w.opts.Compression), p)
	if _, err := w.w.Write(w.rec); err != nil {
		return fmt.Errorf("framelog: write %s: %w", t, err)
	}
	return nil
}

// Close releases compressor state. It does not close the underlying writer.
func (w *Writer) Close() error {
	return w.comp.close()
}
