package grl

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/cancanxinxin/grl/pkg/trackfb"
)

// BuildParameters encodes p as a FusionTrackParameters table. Geometries
// are named from GeometryNames (nil means unnamed); MarkerNames, when set,
// must pair with MarkerIDs. nil slices are left out of the table.
func BuildParameters(b *flatbuffers.Builder, p *Parameters) (flatbuffers.UOffsetT, error) {
	if p.MarkerNames != nil && len(p.MarkerNames) != len(p.MarkerIDs) {
		return 0, fmt.Errorf("%w: %d marker IDs but %d marker names",
			ErrInvalidInput, len(p.MarkerIDs), len(p.MarkerNames))
	}
	if p.DeviceTypes != nil && len(p.DeviceTypes) != len(p.DeviceSerialNumbers) {
		return 0, fmt.Errorf("%w: %d device serial numbers but %d device types",
			ErrInvalidInput, len(p.DeviceSerialNumbers), len(p.DeviceTypes))
	}

	name := b.CreateString(p.Name)
	deviceClock := b.CreateString(p.DeviceClockID)
	localClock := b.CreateString(p.LocalClockID)

	var geometries flatbuffers.UOffsetT
	if p.Geometries != nil {
		var err error
		geometries, err = BuildGeometries(b, p.Geometries, p.GeometryNames)
		if err != nil {
			return 0, fmt.Errorf("geometries: %w", err)
		}
	}
	filenames := buildStrings(b, p.GeometryFilenames)
	dirs := buildStrings(b, p.GeometryDirs)
	trackers := buildUint64s(b, p.TrackerDeviceIDs)
	markerIDs := buildUint64s(b, p.MarkerIDs)
	markerNames := buildStrings(b, p.MarkerNames)
	serials := buildUint64s(b, p.DeviceSerialNumbers)
	var deviceTypes flatbuffers.UOffsetT
	if p.DeviceTypes != nil {
		deviceTypes = b.CreateByteVector(p.DeviceTypes)
	}

	b.StartObject(trackfb.ParamsNumFields)
	b.PrependUOffsetTSlot(trackfb.ParamsName, name, 0)
	b.PrependUOffsetTSlot(trackfb.ParamsDeviceClockID, deviceClock, 0)
	b.PrependUOffsetTSlot(trackfb.ParamsLocalClockID, localClock, 0)
	b.PrependUOffsetTSlot(trackfb.ParamsGeometries, geometries, 0)
	b.PrependUOffsetTSlot(trackfb.ParamsGeometryFilenames, filenames, 0)
	b.PrependUOffsetTSlot(trackfb.ParamsGeometryDir, dirs, 0)
	b.PrependUOffsetTSlot(trackfb.ParamsTrackerDeviceIDs, trackers, 0)
	b.PrependUOffsetTSlot(trackfb.ParamsMarkerIDs, markerIDs, 0)
	b.PrependUOffsetTSlot(trackfb.ParamsMarkerNames, markerNames, 0)
	b.PrependUOffsetTSlot(trackfb.ParamsDeviceSerialNumbers, serials, 0)
	b.PrependUOffsetTSlot(trackfb.ParamsDeviceTypes, deviceTypes, 0)
	return b.EndObject(), nil
}
