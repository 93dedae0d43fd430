package grl

import (
	"testing"
	"testing/quick"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cancanxinxin/grl/pkg/trackfb"
)

func finishGeometry(t *testing.T, g *Geometry, name string) *trackfb.FtkGeometry {
	t.Helper()
	b := flatbuffers.NewBuilder(0)
	off, err := BuildGeometry(b, g, name)
	require.NoError(t, err)
	b.Finish(off)
	buf := b.FinishedBytes()
	var out trackfb.FtkGeometry
	out.Init(buf, flatbuffers.GetUOffsetT(buf))
	return &out
}

func points(n int) []r3.Vec {
	ps := make([]r3.Vec, n)
	for i := range ps {
		ps[i] = r3.Vec{X: float64(i), Y: float64(i) * 10, Z: -float64(i)}
	}
	return ps
}

func TestBuildGeometry(t *testing.T) {
	g := &Geometry{ID: 8700339, Version: 2, PointsCount: 4, Positions: points(4)}
	out := finishGeometry(t, g, "probe")
	assert.Equal(t, "probe", string(out.Name()))
	assert.Equal(t, uint32(8700339), out.GeometryID())
	assert.Equal(t, uint32(2), out.Version())
	require.Equal(t, 4, out.PositionsLength())
	var v trackfb.Vector3d
	for i := 0; i < 4; i++ {
		require.True(t, out.Positions(&v, i))
		assert.Equal(t, Point(g.Positions[i]), v.Value())
	}
}

func TestBuildGeometryTruncates(t *testing.T) {
	condition := func(count uint8) bool {
		pc := int(count % 12)
		g := &Geometry{ID: 1, PointsCount: uint32(pc), Positions: points(pc)}
		out := finishGeometry(t, g, "")
		return out.PositionsLength() == min(pc, MaxFiducials)
	}
	if err := quick.Check(condition, &quick.Config{}); err != nil {
		t.Errorf("Error: %v", err)
	}
}

func TestBuildGeometryShortPositions(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	_, err := BuildGeometry(b, &Geometry{ID: 3, PointsCount: 4, Positions: points(2)}, "")
	require.ErrorIs(t, err, ErrInvalidInput)

	// Only the first MaxFiducials positions are needed.
	_, err = BuildGeometry(b, &Geometry{ID: 3, PointsCount: 9, Positions: points(MaxFiducials)}, "")
	require.NoError(t, err)
}

func TestBuildMarker(t *testing.T) {
	m := &Marker{
		ID:            5,
		GeometryID:    4400,
		PresenceMask:  0b1011,
		Rotation:      [3][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		TranslationMM: [3]float32{10, -20, 1500},
	}
	b := flatbuffers.NewBuilder(0)
	b.Finish(BuildMarker(b, m, "tool"))
	buf := b.FinishedBytes()
	var out trackfb.FtkMarker
	out.Init(buf, flatbuffers.GetUOffsetT(buf))

	assert.Equal(t, "tool", string(out.Name()))
	assert.Equal(t, uint32(5), out.ID())
	assert.Equal(t, uint32(4400), out.GeometryID())
	assert.Equal(t, []byte{1, 0, 1, 1}, out.GeometryPresenceMask())
	pose := out.Transform(nil)
	require.NotNil(t, pose)
	got := pose.Value()
	assert.Equal(t, trackfb.Vec3{X: 10, Y: -20, Z: 1500}, got.Position)
	assertQuat(t, trackfb.Quat{W: 1}, got.Orientation)
}

func TestBuildMarkerZeroMask(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	b.Finish(BuildMarker(b, &Marker{Rotation: [3][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}, ""))
	buf := b.FinishedBytes()
	var out trackfb.FtkMarker
	out.Init(buf, flatbuffers.GetUOffsetT(buf))
	assert.True(t, out.Has(trackfb.MarkerPresenceMask))
	assert.Empty(t, out.GeometryPresenceMask())
	assert.Equal(t, "", string(out.Name()))
}

func TestBuildFiducial(t *testing.T) {
	f := &Fiducial{
		LeftIndex:            3,
		RightIndex:           -1,
		PositionMM:           r3.Vec{X: 1.5, Y: 2.5, Z: 900},
		EpipolarErrorPixels:  0.25,
		TriangulationErrorMM: 0.125,
		Probability:          1,
	}
	b := flatbuffers.NewBuilder(0)
	b.Finish(BuildFiducial(b, f, "probe"))
	buf := b.FinishedBytes()
	var out trackfb.Ftk3DFiducial
	out.Init(buf, flatbuffers.GetUOffsetT(buf))

	assert.Equal(t, "probe", string(out.MarkerName()))
	assert.Equal(t, int32(3), out.LeftIndex())
	assert.Equal(t, int32(-1), out.RightIndex())
	assert.Equal(t, trackfb.Vec3{X: 1.5, Y: 2.5, Z: 900}, out.PositionMM(nil).Value())
	assert.Equal(t, 0.25, out.EpipolarErrorPixels())
	assert.Equal(t, 0.125, out.TriangulationErrorMM())
	assert.Equal(t, 1.0, out.Probability())
}

func TestBuildRegionOfInterest(t *testing.T) {
	r := &RegionOfInterest{
		CenterXPixels: 640.5, CenterYPixels: 480.25,
		RightEdge: 650, BottomEdge: 490, LeftEdge: 630, TopEdge: 470,
		PixelsCount: 312, Probability: 0.75,
	}
	b := flatbuffers.NewBuilder(0)
	b.Finish(BuildRegionOfInterest(b, r))
	buf := b.FinishedBytes()
	var out trackfb.FtkRegionOfInterest
	out.Init(buf, flatbuffers.GetUOffsetT(buf))

	assert.Equal(t, 640.5, out.CenterXPixels())
	assert.Equal(t, 480.25, out.CenterYPixels())
	assert.Equal(t, uint32(650), out.RightEdge())
	assert.Equal(t, uint32(490), out.BottomEdge())
	assert.Equal(t, uint32(630), out.LeftEdge())
	assert.Equal(t, uint32(470), out.TopEdge())
	assert.Equal(t, uint32(312), out.PixelsCount())
	assert.Equal(t, 0.75, out.Probability())
}
