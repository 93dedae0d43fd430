package grl

import (
	"context"
	"testing"
)

func BenchmarkEncodeFrame(b *testing.B) {
	frame := sampleFrame()
	enc := NewEncoder(Options{})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = enc.EncodeFrame(frame)
	}
}

func BenchmarkEncodeFrameImages(b *testing.B) {
	frame := sampleFrame()
	frame.LeftImage = make([]byte, 2048*1088)
	frame.RightImage = make([]byte, 2048*1088)
	enc := NewEncoder(Options{InitialSize: 5 << 20})
	b.SetBytes(int64(len(frame.LeftImage) + len(frame.RightImage)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = enc.EncodeFrame(frame)
	}
}

func BenchmarkEncodeParameters(b *testing.B) {
	p := sampleParameters()
	enc := NewEncoder(Options{})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = enc.EncodeParameters(p)
	}
}

func BenchmarkPoolEncodeFrames(b *testing.B) {
	frames := make([]Frame, 256)
	for i := range frames {
		frames[i] = *sampleFrame()
	}
	pool := NewPool(Options{})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = pool.EncodeFrames(context.Background(), frames, 8)
	}
}
