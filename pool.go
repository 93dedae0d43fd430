package grl

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// maxPooledBuilder caps the builder capacity kept in the pool so that one
// frame with large images does not pin that memory forever.
const maxPooledBuilder = 16 << 20

// Pool hands out Encoders that share one Options value. Each goroutine
// holds its own Encoder, so builders are never shared.
type Pool struct {
	opts Options
	pool sync.Pool
}

func NewPool(opts Options) *Pool {
	p := &Pool{opts: opts}
	p.pool.New = func() any { return NewEncoder(p.opts) }
	return p
}

func (p *Pool) Get() *Encoder {
	return p.pool.Get().(*Encoder)
}

func (p *Pool) Put(e *Encoder) {
	if e == nil || cap(e.b.Bytes) > maxPooledBuilder {
		return
	}
	e.b.Reset()
	p.pool.Put(e)
}

func (p *Pool) EncodeFrame(f *Frame) ([]byte, error) {
	e := p.Get()
	defer p.Put(e)
	return e.EncodeFrame(f)
}

// EncodeFrames encodes frames concurrently on at most workers goroutines
// (unbounded when workers <= 0). out[i] is the buffer for frames[i]. The
// first error cancels the remaining work.
func (p *Pool) EncodeFrames(ctx context.Context, frames []Frame, workers int) ([][]byte, error) {
	out := make([][]byte, len(frames))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := range frames {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			buf, err := p.EncodeFrame(&frames[i])
			if err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			out[i] = buf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
