package trackfb

import flatbuffers "github.com/google/flatbuffers/go"

const (
	Vector3dSize   = 24
	QuaternionSize = 32
	PoseSize       = Vector3dSize + QuaternionSize
	structAlign    = 8
)

// Vec3 is the wire value of a Vector3d struct.
type Vec3 struct {
	X, Y, Z float64
}

// Quat is the wire value of a Quaternion struct, scalar last.
type Quat struct {
	X, Y, Z, W float64
}

// PoseT is the wire value of a Pose struct.
type PoseT struct {
	Position    Vec3
	Orientation Quat
}

// CreateVector3d writes v inline at the builder head. Inside a table the
// returned offset must go straight to PrependStructSlot.
func CreateVector3d(b *flatbuffers.Builder, v Vec3) flatbuffers.UOffsetT {
	b.Prep(structAlign, Vector3dSize)
	b.PrependFloat64(v.Z)
	b.PrependFloat64(v.Y)
	b.PrependFloat64(v.X)
	return b.Offset()
}

// CreateQuaternion writes q inline at the builder head.
func CreateQuaternion(b *flatbuffers.Builder, q Quat) flatbuffers.UOffsetT {
	b.Prep(structAlign, QuaternionSize)
	b.PrependFloat64(q.W)
	b.PrependFloat64(q.Z)
	b.PrependFloat64(q.Y)
	b.PrependFloat64(q.X)
	return b.Offset()
}

// CreatePose writes p inline at the builder head: position then orientation.
func CreatePose(b *flatbuffers.Builder, p PoseT) flatbuffers.UOffsetT {
	b.Prep(structAlign, PoseSize)
	CreateQuaternion(b, p.Orientation)
	CreateVector3d(b, p.Position)
	return b.Offset()
}

// CreateVector3dVector builds a vector of inline Vector3d structs.
func CreateVector3dVector(b *flatbuffers.Builder, vs []Vec3) flatbuffers.UOffsetT {
	b.StartVector(Vector3dSize, len(vs), structAlign)
	for i := len(vs) - 1; i >= 0; i-- {
		CreateVector3d(b, vs[i])
	}
	return b.EndVector(len(vs))
}

// CreateOffsetVector builds a vector of previously finished offsets, in order.
func CreateOffsetVector(b *flatbuffers.Builder, offs []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	b.StartVector(flatbuffers.SizeUOffsetT, len(offs), flatbuffers.SizeUOffsetT)
	for i := len(offs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offs[i])
	}
	return b.EndVector(len(offs))
}

// CreateUint64Vector builds a vector of ulong scalars.
func CreateUint64Vector(b *flatbuffers.Builder, vs []uint64) flatbuffers.UOffsetT {
	b.StartVector(flatbuffers.SizeUint64, len(vs), flatbuffers.SizeUint64)
	for i := len(vs) - 1; i >= 0; i-- {
		b.PrependUint64(vs[i])
	}
	return b.EndVector(len(vs))
}

// --- readers ---

// Vector3d reads a Vector3d struct in place.
type Vector3d struct {
	_tab flatbuffers.Struct
}

func (rcv *Vector3d) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Vector3d) X() float64 { return rcv._tab.GetFloat64(rcv._tab.Pos) }
func (rcv *Vector3d) Y() float64 { return rcv._tab.GetFloat64(rcv._tab.Pos + 8) }
func (rcv *Vector3d) Z() float64 { return rcv._tab.GetFloat64(rcv._tab.Pos + 16) }

// Value copies the struct out.
func (rcv *Vector3d) Value() Vec3 {
	return Vec3{X: rcv.X(), Y: rcv.Y(), Z: rcv.Z()}
}

// Quaternion reads a Quaternion struct in place.
type Quaternion struct {
	_tab flatbuffers.Struct
}

func (rcv *Quaternion) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Quaternion) Value() Quat {
	return Quat{
		X: rcv._tab.GetFloat64(rcv._tab.Pos),
		Y: rcv._tab.GetFloat64(rcv._tab.Pos + 8),
		Z: rcv._tab.GetFloat64(rcv._tab.Pos + 16),
		W: rcv._tab.GetFloat64(rcv._tab.Pos + 24),
	}
}

// Pose reads a Pose struct in place.
type Pose struct {
	_tab flatbuffers.Struct
}

func (rcv *Pose) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Pose) Position(obj *Vector3d) *Vector3d {
	if obj == nil {
		obj = new(Vector3d)
	}
	obj.Init(rcv._tab.Bytes, rcv._tab.Pos)
	return obj
}

func (rcv *Pose) Orientation(obj *Quaternion) *Quaternion {
	if obj == nil {
		obj = new(Quaternion)
	}
	obj.Init(rcv._tab.Bytes, rcv._tab.Pos+Vector3dSize)
	return obj
}

func (rcv *Pose) Value() PoseT {
	return PoseT{
		Position:    rcv.Position(nil).Value(),
		Orientation: rcv.Orientation(nil).Value(),
	}
}
