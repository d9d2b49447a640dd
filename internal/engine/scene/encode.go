package scene

import (
	"encoding/binary"
	gomath "math"

	"github.com/Faultbox/molmesh/internal/engine/extrude"
	"github.com/Faultbox/molmesh/internal/engine/molecule"
)

// byteWriter appends little-endian scalars to a preallocated buffer.
type byteWriter struct {
	buf []byte
	off int
}

func (w *byteWriter) f32(v float32) {
	binary.LittleEndian.PutUint32(w.buf[w.off:], gomath.Float32bits(v))
	w.off += 4
}

func (w *byteWriter) u32(v uint32) {
	binary.LittleEndian.PutUint32(w.buf[w.off:], v)
	w.off += 4
}

func (w *byteWriter) vec3(v [3]float32) {
	w.f32(v[0])
	w.f32(v[1])
	w.f32(v[2])
}

func (w *byteWriter) vec4(v [4]float32) {
	w.f32(v[0])
	w.f32(v[1])
	w.f32(v[2])
	w.f32(v[3])
}

// encodeVertices packs vertices at extrude.VertexStride.
func encodeVertices(verts []extrude.Vertex) []byte {
	w := &byteWriter{buf: make([]byte, len(verts)*extrude.VertexStride)}
	for i := range verts {
		v := &verts[i]
		w.vec3(v.Position)
		w.vec3(v.Normal)
		w.vec4(v.Color)
		w.vec3(v.CenterPos)
		w.u32(v.ResidueIndex)
	}
	return w.buf
}

// encodeCapsules packs capsule instances at molecule.CapsuleStride.
func encodeCapsules(caps []molecule.CapsuleInstance) []byte {
	w := &byteWriter{buf: make([]byte, len(caps)*molecule.CapsuleStride)}
	for i := range caps {
		c := &caps[i]
		w.vec3(c.Start)
		w.vec3(c.End)
		w.f32(c.Radius)
		w.vec4(c.Color)
		w.u32(c.ResidueIndex)
	}
	return w.buf
}

// encodeSpheres packs sphere instances at molecule.SphereStride.
func encodeSpheres(balls []molecule.SphereInstance) []byte {
	w := &byteWriter{buf: make([]byte, len(balls)*molecule.SphereStride)}
	for i := range balls {
		b := &balls[i]
		w.vec3(b.Center)
		w.f32(b.Radius)
		w.vec4(b.Color)
		w.u32(b.ResidueIndex)
	}
	return w.buf
}

// appendRebased copies src onto dst, adding delta to the uint32 residue field
// found at residueOffset within every stride-sized record. Cached entity
// buffers hold entity-local residue indices; concatenation rebases the copy,
// never the cached original.
func appendRebased(dst, src []byte, stride, residueOffset int, delta uint32) []byte {
	base := len(dst)
	dst = append(dst, src...)
	if delta == 0 {
		return dst
	}
	for off := base + residueOffset; off < len(dst); off += stride {
		v := binary.LittleEndian.Uint32(dst[off:])
		binary.LittleEndian.PutUint32(dst[off:], v+delta)
	}
	return dst
}

// appendRebasedIndices appends indices shifted past the vertices already in
// the scene buffer.
func appendRebasedIndices(dst, src []uint32, vertexBase uint32) []uint32 {
	for _, idx := range src {
		dst = append(dst, idx+vertexBase)
	}
	return dst
}
