package grl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cancanxinxin/grl/pkg/trackfb"
)

func TestPoolEncodeFramesOrder(t *testing.T) {
	frames := make([]Frame, 64)
	for i := range frames {
		frames[i] = *sampleFrame()
		frames[i].SerialNumber = uint64(i)
		frames[i].Header.Counter = uint32(i * 3)
	}
	pool := NewPool(Options{})
	out, err := pool.EncodeFrames(context.Background(), frames, 4)
	require.NoError(t, err)
	require.Len(t, out, len(frames))
	for i, buf := range out {
		f := trackfb.GetRootAsFusionTrackFrame(buf, 0)
		assert.Equal(t, uint64(i), f.SerialNumber())
		assert.Equal(t, uint32(i*3), f.Counter())
	}
}

func TestPoolEncodeFramesError(t *testing.T) {
	frames := []Frame{*sampleFrame(), *sampleFrame(), *sampleFrame()}
	frames[1].Markers[0].FiducialCorresp = []uint32{99}

	out, err := NewPool(Options{}).EncodeFrames(context.Background(), frames, 0)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "frame 1")
	assert.Nil(t, out)
}

func TestPoolEncodeFramesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewPool(Options{}).EncodeFrames(ctx, []Frame{*sampleFrame()}, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestPoolReuse(t *testing.T) {
	pool := NewPool(Options{InitialSize: 64})
	e := pool.Get()
	require.NotNil(t, e)
	assert.Equal(t, 64, e.opts.InitialSize)
	pool.Put(e)
	pool.Put(nil)

	buf, err := pool.EncodeFrame(sampleFrame())
	require.NoError(t, err)
	assert.Equal(t, 1, trackfb.GetRootAsFusionTrackFrame(buf, 0).MarkersLength())
}
