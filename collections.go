package grl

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/cancanxinxin/grl/pkg/trackfb"
)

// BuildFunc encodes one item under name and returns its table offset.
type BuildFunc[T any] func(b *flatbuffers.Builder, item *T, name string) (flatbuffers.UOffsetT, error)

// infallible adapts a record encoder that cannot fail.
func infallible[T any](f func(*flatbuffers.Builder, *T, string) flatbuffers.UOffsetT) BuildFunc[T] {
	return func(b *flatbuffers.Builder, item *T, name string) (flatbuffers.UOffsetT, error) {
		return f(b, item, name), nil
	}
}

// BuildOffsetVector encodes items[i] under names[i] and collects the tables
// into one vector, in input order. names must be nil (every name empty) or
// exactly as long as items; the lengths are checked before anything is built.
func BuildOffsetVector[T any](b *flatbuffers.Builder, items []T, names []string, build BuildFunc[T]) (flatbuffers.UOffsetT, error) {
	if names != nil && len(names) != len(items) {
		return 0, fmt.Errorf("%w: %d items but %d names", ErrInvalidInput, len(items), len(names))
	}
	offs := make([]flatbuffers.UOffsetT, len(items))
	for i := range items {
		var name string
		if names != nil {
			name = names[i]
		}
		off, err := build(b, &items[i], name)
		if err != nil {
			return 0, fmt.Errorf("element %d: %w", i, err)
		}
		offs[i] = off
	}
	return trackfb.CreateOffsetVector(b, offs), nil
}

func BuildGeometries(b *flatbuffers.Builder, geometries []Geometry, names []string) (flatbuffers.UOffsetT, error) {
	return BuildOffsetVector(b, geometries, names, BuildGeometry)
}

func BuildMarkers(b *flatbuffers.Builder, markers []Marker, names []string) (flatbuffers.UOffsetT, error) {
	return BuildOffsetVector(b, markers, names, infallible(BuildMarker))
}

func BuildFiducials(b *flatbuffers.Builder, fiducials []Fiducial, names []string) (flatbuffers.UOffsetT, error) {
	return BuildOffsetVector(b, fiducials, names, infallible(BuildFiducial))
}

// BuildRegions encodes a region-of-interest set. ROIs carry no name.
func BuildRegions(b *flatbuffers.Builder, rois []RegionOfInterest) flatbuffers.UOffsetT {
	offs := make([]flatbuffers.UOffsetT, len(rois))
	for i := range rois {
		offs[i] = BuildRegionOfInterest(b, &rois[i])
	}
	return trackfb.CreateOffsetVector(b, offs)
}

// buildStrings returns a [string] vector, or the null offset for nil.
func buildStrings(b *flatbuffers.Builder, ss []string) flatbuffers.UOffsetT {
	if ss == nil {
		return 0
	}
	offs := make([]flatbuffers.UOffsetT, len(ss))
	for i, s := range ss {
		offs[i] = b.CreateString(s)
	}
	return trackfb.CreateOffsetVector(b, offs)
}

func buildUint64s(b *flatbuffers.Builder, vs []uint64) flatbuffers.UOffsetT {
	if vs == nil {
		return 0
	}
	return trackfb.CreateUint64Vector(b, vs)
}
