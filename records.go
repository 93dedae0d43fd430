package grl

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/cancanxinxin/grl/pkg/trackfb"
)

// Record encoders build every child (strings, vectors) first, then open the
// table. Inline structs are computed up front and written inside the table
// right before their slot, which is the only place the builder accepts them.

// BuildGeometry encodes g as an ftkGeometry table. Positions beyond
// MaxFiducials are dropped.
func BuildGeometry(b *flatbuffers.Builder, g *Geometry, name string) (flatbuffers.UOffsetT, error) {
	n := min(int(g.PointsCount), MaxFiducials)
	if n > len(g.Positions) {
		return 0, fmt.Errorf("%w: geometry %d declares %d points but has %d positions",
			ErrInvalidInput, g.ID, g.PointsCount, len(g.Positions))
	}
	pts := make([]trackfb.Vec3, n)
	for i := range pts {
		pts[i] = Point(g.Positions[i])
	}

	nameOff := b.CreateString(name)
	positions := trackfb.CreateVector3dVector(b, pts)

	b.StartObject(trackfb.GeometryNumFields)
	b.PrependUOffsetTSlot(trackfb.GeometryName, nameOff, 0)
	b.PrependUint32Slot(trackfb.GeometryID, g.ID, 0)
	b.PrependUint32Slot(trackfb.GeometryVersion, g.Version, 0)
	b.PrependUOffsetTSlot(trackfb.GeometryPositions, positions, 0)
	return b.EndObject(), nil
}

// BuildMarker encodes m as an ftkMarker table.
func BuildMarker(b *flatbuffers.Builder, m *Marker, name string) flatbuffers.UOffsetT {
	mask := b.CreateByteVector(DecomposeMask(m.PresenceMask))
	pose := PoseFromAffine32(m.Affine())
	nameOff := b.CreateString(name)

	b.StartObject(trackfb.MarkerNumFields)
	b.PrependStructSlot(trackfb.MarkerTransform, trackfb.CreatePose(b, pose), 0)
	b.PrependUOffsetTSlot(trackfb.MarkerName, nameOff, 0)
	b.PrependUint32Slot(trackfb.MarkerID, m.ID, 0)
	b.PrependUint32Slot(trackfb.MarkerGeometryID, m.GeometryID, 0)
	b.PrependUOffsetTSlot(trackfb.MarkerPresenceMask, mask, 0)
	return b.EndObject()
}

// BuildFiducial encodes f as an ftk3DFiducial table.
func BuildFiducial(b *flatbuffers.Builder, f *Fiducial, name string) flatbuffers.UOffsetT {
	pos := Point(f.PositionMM)
	nameOff := b.CreateString(name)

	b.StartObject(trackfb.FiducialNumFields)
	b.PrependStructSlot(trackfb.FiducialPosition, trackfb.CreateVector3d(b, pos), 0)
	b.PrependFloat64Slot(trackfb.FiducialEpipolarError, f.EpipolarErrorPixels, 0)
	b.PrependFloat64Slot(trackfb.FiducialTriangulationError, f.TriangulationErrorMM, 0)
	b.PrependFloat64Slot(trackfb.FiducialProbability, f.Probability, 0)
	b.PrependUOffsetTSlot(trackfb.FiducialMarkerName, nameOff, 0)
	b.PrependInt32Slot(trackfb.FiducialLeftIndex, f.LeftIndex, 0)
	b.PrependInt32Slot(trackfb.FiducialRightIndex, f.RightIndex, 0)
	return b.EndObject()
}

// BuildRegionOfInterest encodes r as an ftkRegionOfInterest table.
func BuildRegionOfInterest(b *flatbuffers.Builder, r *RegionOfInterest) flatbuffers.UOffsetT {
	b.StartObject(trackfb.ROINumFields)
	b.PrependFloat64Slot(trackfb.ROICenterX, r.CenterXPixels, 0)
	b.PrependFloat64Slot(trackfb.ROICenterY, r.CenterYPixels, 0)
	b.PrependFloat64Slot(trackfb.ROIProbability, r.Probability, 0)
	b.PrependUint32Slot(trackfb.ROIRightEdge, r.RightEdge, 0)
	b.PrependUint32Slot(trackfb.ROIBottomEdge, r.BottomEdge, 0)
	b.PrependUint32Slot(trackfb.ROILeftEdge, r.LeftEdge, 0)
	b.PrependUint32Slot(trackfb.ROITopEdge, r.TopEdge, 0)
	b.PrependUint32Slot(trackfb.ROIPixelsCount, r.PixelsCount, 0)
	return b.EndObject()
}
