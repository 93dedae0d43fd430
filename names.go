package grl

import (
	"fmt"
	"strconv"
)

// NameResolver supplies display names for markers. ok is false when the
// resolver has no name; the encoder then writes the empty string.
type NameResolver interface {
	MarkerName(id, geometryID uint32) (name string, ok bool)
}

// EmptyNames never resolves a name. Meant for tests.
type EmptyNames struct{}

func (EmptyNames) MarkerName(uint32, uint32) (string, bool) { return "", false }

// IDNames names a marker "<id>_<geometryID>".
type IDNames struct{}

func (IDNames) MarkerName(id, geometryID uint32) (string, bool) {
	return strconv.FormatUint(uint64(id), 10) + "_" + strconv.FormatUint(uint64(geometryID), 10), true
}

// GeometryNames names a marker after its geometry.
type GeometryNames map[uint32]string

func (g GeometryNames) MarkerName(_, geometryID uint32) (string, bool) {
	name, ok := g[geometryID]
	return name, ok
}

// Chain asks each resolver in turn and returns the first name found.
type Chain []NameResolver

func (c Chain) MarkerName(id, geometryID uint32) (string, bool) {
	for _, r := range c {
		if name, ok := r.MarkerName(id, geometryID); ok {
			return name, true
		}
	}
	return "", false
}

// frameNames resolves one name per marker and, through each marker's
// fiducial correspondences, one name per fiducial. Unclaimed fiducials get
// the empty string; the first marker to claim a fiducial names it.
func frameNames(r NameResolver, markers []Marker, fiducialCount int) (markerNames, fiducialNames []string, err error) {
	markerNames = make([]string, len(markers))
	fiducialNames = make([]string, fiducialCount)
	claimed := make([]bool, fiducialCount)
	for i := range markers {
		m := &markers[i]
		name, _ := r.MarkerName(m.ID, m.GeometryID)
		markerNames[i] = name
		if len(m.FiducialCorresp) > MaxFiducials {
			return nil, nil, fmt.Errorf("%w: marker %d has %d fiducial correspondences, max %d",
				ErrInvalidInput, m.ID, len(m.FiducialCorresp), MaxFiducials)
		}
		for _, idx := range m.FiducialCorresp {
			if idx == InvalidID {
				continue
			}
			if int64(idx) >= int64(fiducialCount) {
				return nil, nil, fmt.Errorf("%w: marker %d references fiducial %d of %d",
					ErrInvalidInput, m.ID, idx, fiducialCount)
			}
			if !claimed[idx] {
				claimed[idx] = true
				fiducialNames[idx] = name
			}
		}
	}
	return markerNames, fiducialNames, nil
}
