// Package trackfb holds the FusionTrack wire schema: slot numbers, struct
// writers, vector helpers and read accessors over finished buffers.
//
// Tables are built with the flatbuffers Builder directly; there is no flatc
// step. Each table has a field count (used with StartObject) and one slot
// constant per field, in trackfb.fbs declaration order.
package trackfb

import flatbuffers "github.com/google/flatbuffers/go"

// ftkGeometry
const (
	GeometryName = iota
	GeometryID
	GeometryVersion
	GeometryPositions
	GeometryNumFields
)

// ftkMarker
const (
	MarkerName = iota
	MarkerID
	MarkerGeometryID
	MarkerPresenceMask
	MarkerTransform
	MarkerNumFields
)

// ftk3DFiducial
const (
	FiducialMarkerName = iota
	FiducialLeftIndex
	FiducialRightIndex
	FiducialPosition
	FiducialEpipolarError
	FiducialTriangulationError
	FiducialProbability
	FiducialNumFields
)

// ftkRegionOfInterest
const (
	ROICenterX = iota
	ROICenterY
	ROIRightEdge
	ROIBottomEdge
	ROILeftEdge
	ROITopEdge
	ROIPixelsCount
	ROIProbability
	ROINumFields
)

// FusionTrackFrame
const (
	FrameTimestamp = iota
	FrameSerialNumber
	FrameHardwareTimestampUS
	FrameDesynchroUS
	FrameCounter
	FrameFormat
	FrameWidth
	FrameHeight
	FrameImageStride
	FrameImageHeaderVersion
	FrameImageHeaderStatus
	FrameImageLeftPixels
	FrameImageLeftVersion
	FrameImageLeftStatus
	FrameImageRightPixels
	FrameImageRightVersion
	FrameImageRightStatus
	FrameROILeft
	FrameROILeftVersion
	FrameROILeftStatus
	FrameROIRight
	FrameROIRightVersion
	FrameROIRightStatus
	FrameFiducials
	FrameFiducialsVersion
	FrameFiducialsStatus
	FrameMarkers
	FrameMarkersVersion
	FrameMarkersStatus
	FrameDeviceType
	FrameError
	FrameNumFields
)

// FusionTrackParameters
const (
	ParamsName = iota
	ParamsDeviceClockID
	ParamsLocalClockID
	ParamsGeometries
	ParamsGeometryFilenames
	ParamsGeometryDir
	ParamsTrackerDeviceIDs
	ParamsMarkerIDs
	ParamsMarkerNames
	ParamsDeviceSerialNumbers
	ParamsDeviceTypes
	ParamsNumFields
)

// vt maps a slot number to its vtable entry offset.
func vt(slot int) flatbuffers.VOffsetT {
	return flatbuffers.VOffsetT(4 + 2*slot)
}
