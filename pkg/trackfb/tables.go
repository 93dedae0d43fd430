package trackfb

import flatbuffers "github.com/google/flatbuffers/go"

// table carries the slot-addressed accessors shared by every table reader.
type table struct {
	_tab flatbuffers.Table
}

func (t *table) Init(buf []byte, i flatbuffers.UOffsetT) {
	t._tab.Bytes = buf
	t._tab.Pos = i
}

func (t *table) Table() flatbuffers.Table {
	return t._tab
}

// Has reports whether slot is present in the table's vtable. Absent offset
// fields were encoded as null; absent scalars hold their default.
func (t *table) Has(slot int) bool {
	return t._tab.Offset(vt(slot)) != 0
}

func (t *table) field(slot int) flatbuffers.UOffsetT {
	return flatbuffers.UOffsetT(t._tab.Offset(vt(slot)))
}

func (t *table) uint32At(slot int) uint32 {
	if o := t.field(slot); o != 0 {
		return t._tab.GetUint32(o + t._tab.Pos)
	}
	return 0
}

func (t *table) int32At(slot int) int32 {
	if o := t.field(slot); o != 0 {
		return t._tab.GetInt32(o + t._tab.Pos)
	}
	return 0
}

func (t *table) uint64At(slot int) uint64 {
	if o := t.field(slot); o != 0 {
		return t._tab.GetUint64(o + t._tab.Pos)
	}
	return 0
}

func (t *table) int64At(slot int) int64 {
	if o := t.field(slot); o != 0 {
		return t._tab.GetInt64(o + t._tab.Pos)
	}
	return 0
}

func (t *table) float64At(slot int) float64 {
	if o := t.field(slot); o != 0 {
		return t._tab.GetFloat64(o + t._tab.Pos)
	}
	return 0
}

// bytesAt returns a string or [ubyte] field; nil when absent.
func (t *table) bytesAt(slot int) []byte {
	if o := t.field(slot); o != 0 {
		return t._tab.ByteVector(o + t._tab.Pos)
	}
	return nil
}

func (t *table) vectorLen(slot int) int {
	if o := t.field(slot); o != 0 {
		return t._tab.VectorLen(o)
	}
	return 0
}

// element returns the absolute position of element j of a vector whose
// elements are size bytes wide.
func (t *table) element(slot, j, size int) (flatbuffers.UOffsetT, bool) {
	o := t.field(slot)
	if o == 0 || j < 0 || j >= t._tab.VectorLen(o) {
		return 0, false
	}
	return t._tab.Vector(o) + flatbuffers.UOffsetT(j*size), true
}

func (t *table) tableAt(slot, j int) (flatbuffers.UOffsetT, bool) {
	x, ok := t.element(slot, j, flatbuffers.SizeUOffsetT)
	if !ok {
		return 0, false
	}
	return t._tab.Indirect(x), true
}

func (t *table) stringAt(slot, j int) []byte {
	x, ok := t.element(slot, j, flatbuffers.SizeUOffsetT)
	if !ok {
		return nil
	}
	return t._tab.ByteVector(x)
}

func (t *table) uint64Elem(slot, j int) uint64 {
	x, ok := t.element(slot, j, flatbuffers.SizeUint64)
	if !ok {
		return 0
	}
	return t._tab.GetUint64(x)
}

func (t *table) structAt(slot int) (flatbuffers.UOffsetT, bool) {
	if o := t.field(slot); o != 0 {
		return o + t._tab.Pos, true
	}
	return 0, false
}

// ---------------------------------------------------------------------------

// FtkGeometry reads an ftkGeometry table.
type FtkGeometry struct{ table }

func (rcv *FtkGeometry) Name() []byte         { return rcv.bytesAt(GeometryName) }
func (rcv *FtkGeometry) GeometryID() uint32   { return rcv.uint32At(GeometryID) }
func (rcv *FtkGeometry) Version() uint32      { return rcv.uint32At(GeometryVersion) }
func (rcv *FtkGeometry) PositionsLength() int { return rcv.vectorLen(GeometryPositions) }

func (rcv *FtkGeometry) Positions(obj *Vector3d, j int) bool {
	x, ok := rcv.element(GeometryPositions, j, Vector3dSize)
	if ok {
		obj.Init(rcv._tab.Bytes, x)
	}
	return ok
}

// FtkMarker reads an ftkMarker table.
type FtkMarker struct{ table }

func (rcv *FtkMarker) Name() []byte       { return rcv.bytesAt(MarkerName) }
func (rcv *FtkMarker) ID() uint32         { return rcv.uint32At(MarkerID) }
func (rcv *FtkMarker) GeometryID() uint32 { return rcv.uint32At(MarkerGeometryID) }

// GeometryPresenceMask returns the decomposed mask bytes, nil when absent.
func (rcv *FtkMarker) GeometryPresenceMask() []byte { return rcv.bytesAt(MarkerPresenceMask) }

func (rcv *FtkMarker) Transform(obj *Pose) *Pose {
	x, ok := rcv.structAt(MarkerTransform)
	if !ok {
		return nil
	}
	if obj == nil {
		obj = new(Pose)
	}
	obj.Init(rcv._tab.Bytes, x)
	return obj
}

// Ftk3DFiducial reads an ftk3DFiducial table.
type Ftk3DFiducial struct{ table }

func (rcv *Ftk3DFiducial) MarkerName() []byte            { return rcv.bytesAt(FiducialMarkerName) }
func (rcv *Ftk3DFiducial) LeftIndex() int32              { return rcv.int32At(FiducialLeftIndex) }
func (rcv *Ftk3DFiducial) RightIndex() int32             { return rcv.int32At(FiducialRightIndex) }
func (rcv *Ftk3DFiducial) EpipolarErrorPixels() float64  { return rcv.float64At(FiducialEpipolarError) }
func (rcv *Ftk3DFiducial) TriangulationErrorMM() float64 { return rcv.float64At(FiducialTriangulationError) }
func (rcv *Ftk3DFiducial) Probability() float64          { return rcv.float64At(FiducialProbability) }

func (rcv *Ftk3DFiducial) PositionMM(obj *Vector3d) *Vector3d {
	x, ok := rcv.structAt(FiducialPosition)
	if !ok {
		return nil
	}
	if obj == nil {
		obj = new(Vector3d)
	}
	obj.Init(rcv._tab.Bytes, x)
	return obj
}

// FtkRegionOfInterest reads an ftkRegionOfInterest table.
type FtkRegionOfInterest struct{ table }

func (rcv *FtkRegionOfInterest) CenterXPixels() float64 { return rcv.float64At(ROICenterX) }
func (rcv *FtkRegionOfInterest) CenterYPixels() float64 { return rcv.float64At(ROICenterY) }
func (rcv *FtkRegionOfInterest) RightEdge() uint32      { return rcv.uint32At(ROIRightEdge) }
func (rcv *FtkRegionOfInterest) BottomEdge() uint32     { return rcv.uint32At(ROIBottomEdge) }
func (rcv *FtkRegionOfInterest) LeftEdge() uint32       { return rcv.uint32At(ROILeftEdge) }
func (rcv *FtkRegionOfInterest) TopEdge() uint32        { return rcv.uint32At(ROITopEdge) }
func (rcv *FtkRegionOfInterest) PixelsCount() uint32    { return rcv.uint32At(ROIPixelsCount) }
func (rcv *FtkRegionOfInterest) Probability() float64   { return rcv.float64At(ROIProbability) }

// FusionTrackFrame reads the root frame table.
type FusionTrackFrame struct{ table }

// GetRootAsFusionTrackFrame resolves the root table of a finished buffer.
func GetRootAsFusionTrackFrame(buf []byte, offset flatbuffers.UOffsetT) *FusionTrackFrame {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &FusionTrackFrame{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *FusionTrackFrame) Timestamp() float64                { return rcv.float64At(FrameTimestamp) }
func (rcv *FusionTrackFrame) SerialNumber() uint64              { return rcv.uint64At(FrameSerialNumber) }
func (rcv *FusionTrackFrame) HardwareTimestampUS() uint64       { return rcv.uint64At(FrameHardwareTimestampUS) }
func (rcv *FusionTrackFrame) DesynchroUS() uint64               { return rcv.uint64At(FrameDesynchroUS) }
func (rcv *FusionTrackFrame) Counter() uint32                   { return rcv.uint32At(FrameCounter) }
func (rcv *FusionTrackFrame) Format() uint32                    { return rcv.uint32At(FrameFormat) }
func (rcv *FusionTrackFrame) Width() uint32                     { return rcv.uint32At(FrameWidth) }
func (rcv *FusionTrackFrame) Height() uint32                    { return rcv.uint32At(FrameHeight) }
func (rcv *FusionTrackFrame) ImageStrideInBytes() int32         { return rcv.int32At(FrameImageStride) }
func (rcv *FusionTrackFrame) ImageLeftPixels() []byte           { return rcv.bytesAt(FrameImageLeftPixels) }
func (rcv *FusionTrackFrame) ImageRightPixels() []byte          { return rcv.bytesAt(FrameImageRightPixels) }
func (rcv *FusionTrackFrame) RegionsOfInterestLeftLength() int  { return rcv.vectorLen(FrameROILeft) }
func (rcv *FusionTrackFrame) RegionsOfInterestRightLength() int { return rcv.vectorLen(FrameROIRight) }
func (rcv *FusionTrackFrame) ThreeDFiducialsLength() int        { return rcv.vectorLen(FrameFiducials) }
func (rcv *FusionTrackFrame) MarkersLength() int                { return rcv.vectorLen(FrameMarkers) }
func (rcv *FusionTrackFrame) DeviceType() int32                 { return rcv.int32At(FrameDeviceType) }
func (rcv *FusionTrackFrame) FtkError() int64                   { return rcv.int64At(FrameError) }

// Version returns the version half of a (version, status) pair; versionSlot
// is one of the Frame*Version constants.
func (rcv *FusionTrackFrame) Version(versionSlot int) uint32 { return rcv.uint32At(versionSlot) }

// Status returns the status half of a (version, status) pair.
func (rcv *FusionTrackFrame) Status(statusSlot int) int32 { return rcv.int32At(statusSlot) }

func (rcv *FusionTrackFrame) RegionsOfInterestLeft(obj *FtkRegionOfInterest, j int) bool {
	return rcv.initTable(&obj.table, FrameROILeft, j)
}

func (rcv *FusionTrackFrame) RegionsOfInterestRight(obj *FtkRegionOfInterest, j int) bool {
	return rcv.initTable(&obj.table, FrameROIRight, j)
}

func (rcv *FusionTrackFrame) ThreeDFiducials(obj *Ftk3DFiducial, j int) bool {
	return rcv.initTable(&obj.table, FrameFiducials, j)
}

func (rcv *FusionTrackFrame) Markers(obj *FtkMarker, j int) bool {
	return rcv.initTable(&obj.table, FrameMarkers, j)
}

func (t *table) initTable(obj *table, slot, j int) bool {
	x, ok := t.tableAt(slot, j)
	if ok {
		obj.Init(t._tab.Bytes, x)
	}
	return ok
}

// FusionTrackParameters reads the tracker parameters root table.
type FusionTrackParameters struct{ table }

func GetRootAsFusionTrackParameters(buf []byte, offset flatbuffers.UOffsetT) *FusionTrackParameters {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &FusionTrackParameters{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *FusionTrackParameters) Name() []byte          { return rcv.bytesAt(ParamsName) }
func (rcv *FusionTrackParameters) DeviceClockID() []byte { return rcv.bytesAt(ParamsDeviceClockID) }
func (rcv *FusionTrackParameters) LocalClockID() []byte  { return rcv.bytesAt(ParamsLocalClockID) }
func (rcv *FusionTrackParameters) GeometriesLength() int { return rcv.vectorLen(ParamsGeometries) }

func (rcv *FusionTrackParameters) Geometries(obj *FtkGeometry, j int) bool {
	return rcv.initTable(&obj.table, ParamsGeometries, j)
}

func (rcv *FusionTrackParameters) GeometryFilenamesLength() int   { return rcv.vectorLen(ParamsGeometryFilenames) }
func (rcv *FusionTrackParameters) GeometryFilenames(j int) []byte { return rcv.stringAt(ParamsGeometryFilenames, j) }
func (rcv *FusionTrackParameters) GeometryDirLength() int         { return rcv.vectorLen(ParamsGeometryDir) }
func (rcv *FusionTrackParameters) GeometryDir(j int) []byte       { return rcv.stringAt(ParamsGeometryDir, j) }
func (rcv *FusionTrackParameters) TrackerDeviceIDsLength() int    { return rcv.vectorLen(ParamsTrackerDeviceIDs) }
func (rcv *FusionTrackParameters) TrackerDeviceIDs(j int) uint64  { return rcv.uint64Elem(ParamsTrackerDeviceIDs, j) }
func (rcv *FusionTrackParameters) MarkerIDsLength() int           { return rcv.vectorLen(ParamsMarkerIDs) }
func (rcv *FusionTrackParameters) MarkerIDs(j int) uint64         { return rcv.uint64Elem(ParamsMarkerIDs, j) }
func (rcv *FusionTrackParameters) MarkerNamesLength() int         { return rcv.vectorLen(ParamsMarkerNames) }
func (rcv *FusionTrackParameters) MarkerNames(j int) []byte       { return rcv.stringAt(ParamsMarkerNames, j) }
func (rcv *FusionTrackParameters) DeviceSerialNumbersLength() int {
	return rcv.vectorLen(ParamsDeviceSerialNumbers)
}
func (rcv *FusionTrackParameters) DeviceSerialNumbers(j int) uint64 {
	return rcv.uint64Elem(ParamsDeviceSerialNumbers, j)
}
func (rcv *FusionTrackParameters) DeviceTypes() []byte { return rcv.bytesAt(ParamsDeviceTypes) }
