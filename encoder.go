// Package grl encodes FusionTrack optical tracker frames into FlatBuffers.
//
// Every encoder builds bottom-up: strings, vectors and nested tables are
// finished before the table that points at them, and references are offsets
// resolved by the builder. An Encoder owns one builder and must not be used
// from several goroutines at once; use a Pool for concurrent encoding.
package grl

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	flatbuffers "github.com/google/flatbuffers/go"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrBuilder      = errors.New("buffer builder failure")
)

// DefaultInitialSize is the starting builder capacity when Options leaves
// it unset. Frames without images fit comfortably.
const DefaultInitialSize = 4096

type Options struct {
	// InitialSize is the starting capacity of the builder buffer.
	InitialSize int
	// LegacyZeroTimestamp writes 0 for the frame timestamp, matching
	// buffers produced before the seconds conversion was fixed.
	LegacyZeroTimestamp bool
	// Names resolves marker names; nil means IDNames.
	Names  NameResolver
	Logger *slog.Logger
}

func (o *Options) names() NameResolver {
	if o.Names == nil {
		return IDNames{}
	}
	return o.Names
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

type Encoder struct {
	opts Options
	b    *flatbuffers.Builder
}

func NewEncoder(opts Options) *Encoder {
	if opts.InitialSize <= 0 {
		opts.InitialSize = DefaultInitialSize
	}
	return &Encoder{opts: opts, b: flatbuffers.NewBuilder(opts.InitialSize)}
}

// EncodeFrame returns the finished FusionTrackFrame buffer for f. The
// result does not alias the encoder's builder.
func (e *Encoder) EncodeFrame(f *Frame) ([]byte, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil frame", ErrInvalidInput)
	}
	// Resolver calls stay outside encode's recover; their panics belong to
	// the caller.
	markerNames, fiducialNames, err := frameNames(e.opts.names(), f.Markers, len(f.Fiducials))
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	return e.encode("frame", func(b *flatbuffers.Builder) (flatbuffers.UOffsetT, error) {
		return buildFrame(b, f, &e.opts, markerNames, fiducialNames)
	})
}

// EncodeParameters returns the finished FusionTrackParameters buffer for p.
func (e *Encoder) EncodeParameters(p *Parameters) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil parameters", ErrInvalidInput)
	}
	log := e.opts.logger()
	for i := range p.Geometries {
		if g := &p.Geometries[i]; g.PointsCount > MaxFiducials {
			log.Debug("grl: truncating geometry fiducials",
				"geometry", g.ID, "points", g.PointsCount, "max", MaxFiducials)
		}
	}
	return e.encode("parameters", func(b *flatbuffers.Builder) (flatbuffers.UOffsetT, error) {
		return BuildParameters(b, p)
	})
}

// encode runs build against a clean builder and finishes the buffer. Builder
// panics (buffer growth past 2GiB, misordered construction) become
// ErrBuilder; nothing partial is returned.
func (e *Encoder) encode(kind string, build func(*flatbuffers.Builder) (flatbuffers.UOffsetT, error)) (out []byte, err error) {
	e.b.Reset()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if re, ok := r.(runtime.Error); ok {
			panic(re)
		}
		e.b.Reset()
		e.opts.logger().Warn("grl: builder failure", "kind", kind, "panic", r)
		out, err = nil, fmt.Errorf("encode %s: %w: %v", kind, ErrBuilder, r)
	}()

	root, err := build(e.b)
	if err != nil {
		e.b.Reset()
		return nil, fmt.Errorf("encode %s: %w", kind, err)
	}
	e.b.Finish(root)
	return bytes.Clone(e.b.FinishedBytes()), nil
}
