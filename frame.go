package grl

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/cancanxinxin/grl/pkg/trackfb"
)

const (
	// MicrosecToSec scales the hardware timestamp to seconds.
	MicrosecToSec = 1e-6

	// legacyMicrosecToSec reproduces the historical scale, an integer
	// division that evaluates to zero. Used only with LegacyZeroTimestamp.
	legacyMicrosecToSec = 1 / 1000000
)

// FrameTimestamp converts a hardware timestamp in microseconds to seconds.
func FrameTimestamp(timestampUS uint64, legacy bool) float64 {
	if legacy {
		return float64(timestampUS) * legacyMicrosecToSec
	}
	return float64(timestampUS) * MicrosecToSec
}

// BuildFrame encodes f as a FusionTrackFrame table and returns its offset.
// The caller finishes the buffer. A nil opts uses the defaults.
func BuildFrame(b *flatbuffers.Builder, f *Frame, opts *Options) (flatbuffers.UOffsetT, error) {
	if opts == nil {
		opts = &Options{}
	}
	markerNames, fiducialNames, err := frameNames(opts.names(), f.Markers, len(f.Fiducials))
	if err != nil {
		return 0, err
	}
	return buildFrame(b, f, opts, markerNames, fiducialNames)
}

// buildFrame does the builder work of BuildFrame with names already resolved.
func buildFrame(b *flatbuffers.Builder, f *Frame, opts *Options, markerNames, fiducialNames []string) (flatbuffers.UOffsetT, error) {
	var leftPixels, rightPixels flatbuffers.UOffsetT
	if f.LeftImage != nil {
		leftPixels = b.CreateByteString(f.LeftImage)
	}
	if f.RightImage != nil {
		rightPixels = b.CreateByteString(f.RightImage)
	}

	var leftROIs, rightROIs flatbuffers.UOffsetT
	if f.LeftROIs != nil {
		leftROIs = BuildRegions(b, f.LeftROIs)
	}
	if f.RightROIs != nil {
		rightROIs = BuildRegions(b, f.RightROIs)
	}

	fiducials, err := BuildFiducials(b, f.Fiducials, fiducialNames)
	if err != nil {
		return 0, err
	}
	markers, err := BuildMarkers(b, f.Markers, markerNames)
	if err != nil {
		return 0, err
	}

	h, st := &f.Header, &f.Status
	b.StartObject(trackfb.FrameNumFields)
	b.PrependFloat64Slot(trackfb.FrameTimestamp, FrameTimestamp(h.TimestampUS, opts.LegacyZeroTimestamp), 0)
	b.PrependUint64Slot(trackfb.FrameSerialNumber, f.SerialNumber, 0)
	b.PrependUint64Slot(trackfb.FrameHardwareTimestampUS, h.TimestampUS, 0)
	b.PrependUint64Slot(trackfb.FrameDesynchroUS, h.DesynchroUS, 0)
	b.PrependInt64Slot(trackfb.FrameError, f.Error, 0)

	b.PrependUint32Slot(trackfb.FrameCounter, h.Counter, 0)
	b.PrependUint32Slot(trackfb.FrameFormat, h.Format, 0)
	b.PrependUint32Slot(trackfb.FrameWidth, h.Width, 0)
	b.PrependUint32Slot(trackfb.FrameHeight, h.Height, 0)
	b.PrependInt32Slot(trackfb.FrameImageStride, h.StrideInBytes, 0)

	addStatus(b, trackfb.FrameImageHeaderVersion, trackfb.FrameImageHeaderStatus, st.ImageHeader)
	b.PrependUOffsetTSlot(trackfb.FrameImageLeftPixels, leftPixels, 0)
	addStatus(b, trackfb.FrameImageLeftVersion, trackfb.FrameImageLeftStatus, st.ImageLeft)
	b.PrependUOffsetTSlot(trackfb.FrameImageRightPixels, rightPixels, 0)
	addStatus(b, trackfb.FrameImageRightVersion, trackfb.FrameImageRightStatus, st.ImageRight)
	b.PrependUOffsetTSlot(trackfb.FrameROILeft, leftROIs, 0)
	addStatus(b, trackfb.FrameROILeftVersion, trackfb.FrameROILeftStatus, st.ROILeft)
	b.PrependUOffsetTSlot(trackfb.FrameROIRight, rightROIs, 0)
	addStatus(b, trackfb.FrameROIRightVersion, trackfb.FrameROIRightStatus, st.ROIRight)
	b.PrependUOffsetTSlot(trackfb.FrameFiducials, fiducials, 0)
	addStatus(b, trackfb.FrameFiducialsVersion, trackfb.FrameFiducialsStatus, st.Fiducials)
	b.PrependUOffsetTSlot(trackfb.FrameMarkers, markers, 0)
	addStatus(b, trackfb.FrameMarkersVersion, trackfb.FrameMarkersStatus, st.Markers)

	b.PrependInt32Slot(trackfb.FrameDeviceType, f.DeviceType, 0)
	return b.EndObject(), nil
}

func addStatus(b *flatbuffers.Builder, versionSlot, statusSlot int, s FieldStatus) {
	b.PrependUint32Slot(versionSlot, s.Version, 0)
	b.PrependInt32Slot(statusSlot, s.Status, 0)
}
