package grl

import (
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// MaxFiducials is the number of fiducials a geometry can declare
	// (FTK_MAX_FIDUCIALS in the tracker SDK).
	MaxFiducials = 6

	// InvalidID marks an unused fiducial correspondence slot.
	InvalidID = ^uint32(0)
)

// Geometry is a named, versioned template of fiducial positions that
// defines a trackable rigid body.
type Geometry struct {
	ID          uint32   `yaml:"id"`
	Version     uint32   `yaml:"version"`
	PointsCount uint32   `yaml:"points_count"`
	Positions   []r3.Vec `yaml:"positions"`
}

// Marker is a tracked rigid body as reported for one frame.
type Marker struct {
	ID         uint32 `yaml:"id"`
	GeometryID uint32 `yaml:"geometry_id"`
	// PresenceMask has bit i set when fiducial i of the geometry was matched.
	PresenceMask  uint32        `yaml:"presence_mask"`
	Rotation      [3][3]float32 `yaml:"rotation"`
	TranslationMM [3]float32    `yaml:"translation_mm"`
	// FiducialCorresp maps geometry fiducial i to an index in the frame's
	// fiducial list, InvalidID when unmatched. May be nil.
	FiducialCorresp []uint32 `yaml:"fiducial_corresp,omitempty"`
}

// Affine returns the marker pose as a single-precision rigid transform.
func (m *Marker) Affine() Affine32 {
	return Affine32{Rotation: m.Rotation, Translation: m.TranslationMM}
}

// Fiducial is a triangulated 3D point.
type Fiducial struct {
	LeftIndex            int32   `yaml:"left_index"`
	RightIndex           int32   `yaml:"right_index"`
	PositionMM           r3.Vec  `yaml:"position_mm"`
	EpipolarErrorPixels  float64 `yaml:"epipolar_error_pixels"`
	TriangulationErrorMM float64 `yaml:"triangulation_error_mm"`
	Probability          float64 `yaml:"probability"`
}

// RegionOfInterest is a blob detected in one camera image.
type RegionOfInterest struct {
	CenterXPixels float64 `yaml:"center_x_pixels"`
	CenterYPixels float64 `yaml:"center_y_pixels"`
	RightEdge     uint32  `yaml:"right_edge"`
	BottomEdge    uint32  `yaml:"bottom_edge"`
	LeftEdge      uint32  `yaml:"left_edge"`
	TopEdge       uint32  `yaml:"top_edge"`
	PixelsCount   uint32  `yaml:"pixels_count"`
	Probability   float64 `yaml:"probability"`
}

// FieldStatus is the acquisition protocol's freshness/validity pair for one
// frame field. Both values are copied through unchecked.
type FieldStatus struct {
	Version uint32 `yaml:"version"`
	Status  int32  `yaml:"status"`
}

// FrameStatus groups the per-field status pairs of a frame.
type FrameStatus struct {
	ImageHeader FieldStatus `yaml:"image_header"`
	ImageLeft   FieldStatus `yaml:"image_left"`
	ImageRight  FieldStatus `yaml:"image_right"`
	ROILeft     FieldStatus `yaml:"roi_left"`
	ROIRight    FieldStatus `yaml:"roi_right"`
	Fiducials   FieldStatus `yaml:"fiducials"`
	Markers     FieldStatus `yaml:"markers"`
}

// ImageHeader is the camera image header of a frame.
type ImageHeader struct {
	TimestampUS   uint64 `yaml:"timestamp_us"`
	DesynchroUS   uint64 `yaml:"desynchro_us"`
	Counter       uint32 `yaml:"counter"`
	Format        uint32 `yaml:"format"`
	Width         uint32 `yaml:"width"`
	Height        uint32 `yaml:"height"`
	StrideInBytes int32  `yaml:"stride_in_bytes"`
}

// Frame is one acquisition from the tracker. nil image and ROI slices are
// encoded as absent fields; a non-nil empty ROI slice is an empty vector.
type Frame struct {
	SerialNumber uint64      `yaml:"serial_number"`
	Header       ImageHeader `yaml:"header"`
	Status       FrameStatus `yaml:"status"`

	LeftImage  []byte `yaml:"left_image,omitempty"`
	RightImage []byte `yaml:"right_image,omitempty"`

	LeftROIs  []RegionOfInterest `yaml:"left_rois,omitempty"`
	RightROIs []RegionOfInterest `yaml:"right_rois,omitempty"`

	Fiducials []Fiducial `yaml:"fiducials"`
	Markers   []Marker   `yaml:"markers"`

	DeviceType int32 `yaml:"device_type"`
	Error      int64 `yaml:"error"`
}

// Parameters is the tracker configuration recorded alongside frames.
type Parameters struct {
	Name          string `yaml:"name"`
	DeviceClockID string `yaml:"device_clock_id"`
	LocalClockID  string `yaml:"local_clock_id"`

	Geometries        []Geometry `yaml:"geometries"`
	GeometryNames     []string   `yaml:"geometry_names"`
	GeometryFilenames []string   `yaml:"geometry_filenames"`
	GeometryDirs      []string   `yaml:"geometry_dirs"`

	TrackerDeviceIDs []uint64 `yaml:"tracker_device_ids"`
	MarkerIDs        []uint64 `yaml:"marker_ids"`
	MarkerNames      []string `yaml:"marker_names"`

	DeviceSerialNumbers []uint64 `yaml:"device_serial_numbers"`
	DeviceTypes         []uint8  `yaml:"device_types"`
}
