package trackfb

import (
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rootTable(buf []byte) table {
	var t table
	t.Init(buf, flatbuffers.GetUOffsetT(buf))
	return t
}

func TestPoseStructSlot(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	want := PoseT{
		Position:    Vec3{X: 1, Y: -2, Z: 3.5},
		Orientation: Quat{X: 0.1, Y: 0.2, Z: 0.3, W: 0.9},
	}
	name := b.CreateString("tool")
	b.StartObject(MarkerNumFields)
	b.PrependStructSlot(MarkerTransform, CreatePose(b, want), 0)
	b.PrependUOffsetTSlot(MarkerName, name, 0)
	b.PrependUint32Slot(MarkerID, 7, 0)
	b.Finish(b.EndObject())

	m := FtkMarker{table: rootTable(b.FinishedBytes())}
	require.True(t, m.Has(MarkerTransform))
	assert.False(t, m.Has(MarkerPresenceMask))
	assert.Nil(t, m.GeometryPresenceMask())
	assert.Equal(t, "tool", string(m.Name()))
	assert.Equal(t, uint32(7), m.ID())
	assert.Equal(t, uint32(0), m.GeometryID())

	pose := m.Transform(nil)
	require.NotNil(t, pose)
	assert.Equal(t, want, pose.Value())
	assert.Equal(t, want.Position.Z, pose.Position(nil).Z())
}

func TestMissingStructIsNil(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	b.StartObject(MarkerNumFields)
	b.Finish(b.EndObject())
	m := FtkMarker{table: rootTable(b.FinishedBytes())}
	assert.Nil(t, m.Transform(nil))
}

func TestVector3dVector(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	pts := []Vec3{{X: 1}, {Y: 2}, {Z: 3}, {X: -4, Y: 5, Z: -6}}
	vec := CreateVector3dVector(b, pts)
	b.StartObject(GeometryNumFields)
	b.PrependUOffsetTSlot(GeometryPositions, vec, 0)
	b.PrependUint32Slot(GeometryID, 42, 0)
	b.Finish(b.EndObject())

	g := FtkGeometry{table: rootTable(b.FinishedBytes())}
	require.Equal(t, len(pts), g.PositionsLength())
	var v Vector3d
	for i, want := range pts {
		require.True(t, g.Positions(&v, i))
		assert.Equal(t, want, v.Value(), "point %d", i)
	}
	assert.False(t, g.Positions(&v, len(pts)))
	assert.False(t, g.Positions(&v, -1))
	assert.Equal(t, uint32(42), g.GeometryID())
	assert.Nil(t, g.Name())
}

func TestParametersVectors(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	names := []flatbuffers.UOffsetT{b.CreateString("a"), b.CreateString("bc")}
	nameVec := CreateOffsetVector(b, names)
	ids := CreateUint64Vector(b, []uint64{10, 1 << 40})
	types := b.CreateByteVector([]byte{1, 2})

	b.StartObject(ParamsNumFields)
	b.PrependUOffsetTSlot(ParamsDeviceTypes, types, 0)
	b.PrependUOffsetTSlot(ParamsMarkerIDs, ids, 0)
	b.PrependUOffsetTSlot(ParamsMarkerNames, nameVec, 0)
	b.Finish(b.EndObject())

	p := GetRootAsFusionTrackParameters(b.FinishedBytes(), 0)
	require.Equal(t, 2, p.MarkerNamesLength())
	assert.Equal(t, "a", string(p.MarkerNames(0)))
	assert.Equal(t, "bc", string(p.MarkerNames(1)))
	assert.Nil(t, p.MarkerNames(2))
	require.Equal(t, 2, p.MarkerIDsLength())
	assert.Equal(t, uint64(10), p.MarkerIDs(0))
	assert.Equal(t, uint64(1<<40), p.MarkerIDs(1))
	assert.Equal(t, []byte{1, 2}, p.DeviceTypes())
	assert.Equal(t, 0, p.GeometriesLength())
	assert.False(t, p.Has(ParamsName))
}

func TestEmptyOffsetVectorIsPresent(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	empty := CreateOffsetVector(b, nil)
	b.StartObject(FrameNumFields)
	b.PrependUOffsetTSlot(FrameROILeft, empty, 0)
	b.Finish(b.EndObject())

	f := GetRootAsFusionTrackFrame(b.FinishedBytes(), 0)
	assert.True(t, f.Has(FrameROILeft))
	assert.Equal(t, 0, f.RegionsOfInterestLeftLength())
	assert.False(t, f.Has(FrameROIRight))
	var roi FtkRegionOfInterest
	assert.False(t, f.RegionsOfInterestLeft(&roi, 0))
}

func TestSlotVTableOffsets(t *testing.T) {
	assert.Equal(t, flatbuffers.VOffsetT(4), vt(0))
	assert.Equal(t, 31, FrameNumFields)
	assert.Equal(t, 11, ParamsNumFields)
	assert.Equal(t, 56, PoseSize)
}
