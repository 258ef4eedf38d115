// Package geometry builds the static meshes the renderer uploads at startup.
package geometry

import (
	"encoding/binary"
	"fmt"
	gomath "math"

	"github.com/Faultbox/hellocone/pkg/math"
)

// Vertex layouts as uploaded to the GPU: tightly packed little-endian float32.
const (
	Stride2D      = 6 * 4 // vec2 position + vec4 color
	ColorOffset2D = 2 * 4
	Stride3D      = 7 * 4 // vec3 position + vec4 color
	ColorOffset3D = 3 * 4
)

// Vertex2D is a flat vertex with an RGBA color.
type Vertex2D struct {
	Position math.Vec2
	Color    math.Vec4
}

// Vertex3D is a vertex in model space with an RGBA color.
type Vertex3D struct {
	Position math.Vec3
	Color    math.Vec4
}

// Triangle returns the red/green/blue demo triangle and its indices.
func Triangle() ([]Vertex2D, []uint8) {
	vertices := []Vertex2D{
		{Position: math.Vec2{X: -0.5, Y: -0.5}, Color: math.Vec4{1, 0, 0, 1}},
		{Position: math.Vec2{X: 0.5, Y: -0.5}, Color: math.Vec4{0, 1, 0, 1}},
		{Position: math.Vec2{X: 0, Y: 0.5}, Color: math.Vec4{0, 0, 1, 1}},
	}
	return vertices, []uint8{0, 1, 2}
}

// Default cone shape.
const (
	ConeRadius = 0.5
	ConeHeight = 1.866
	ConeSlices = 40
)

// ConeMesh holds a cone body and the disk that closes its base.
// Both index lists address Vertices; Cap reuses the body's rim vertices.
type ConeMesh struct {
	Vertices []Vertex3D
	Body     []uint8
	Cap      []uint8
}

// Cone builds a cone with its apex at (0, 1, 0) and its base disk at
// y = 1 - height. Vertices alternate apex/rim per slice, followed by the
// disk center. Rim brightness is |sin(theta)|, giving a grayscale sweep.
//
// Indices are bytes, so slices is limited to 127.
func Cone(radius, height float32, slices int) ConeMesh {
	if slices < 3 || 2*slices+1 > 256 {
		panic(fmt.Sprintf("geometry: cone slices %d out of range [3, 127]", slices))
	}

	base := 1 - height
	rim := 2 * slices
	center := uint8(rim)

	mesh := ConeMesh{
		Vertices: make([]Vertex3D, 0, rim+1),
		Body:     make([]uint8, 0, 3*slices),
		Cap:      make([]uint8, 0, 3*slices),
	}

	dtheta := 2 * gomath.Pi / float64(slices)
	for i := 0; i < slices; i++ {
		theta := float64(i) * dtheta
		color := math.Gray(float32(gomath.Abs(gomath.Sin(theta))))

		mesh.Vertices = append(mesh.Vertices,
			Vertex3D{Position: math.Vec3{X: 0, Y: 1, Z: 0}, Color: color},
			Vertex3D{
				Position: math.Vec3{
					X: radius * float32(gomath.Cos(theta)),
					Y: base,
					Z: radius * float32(gomath.Sin(theta)),
				},
				Color: color,
			},
		)
	}
	mesh.Vertices = append(mesh.Vertices, Vertex3D{
		Position: math.Vec3{X: 0, Y: base, Z: 0},
		Color:    math.Vec4{1, 1, 1, 1},
	})

	// Apex i, rim i+1, next slice's rim i+3
	for i := 0; i < rim; i += 2 {
		mesh.Body = append(mesh.Body, uint8(i), uint8((i+1)%rim), uint8((i+3)%rim))
	}

	// Fan around the center over consecutive rim vertices
	for i := 1; i < rim; i += 2 {
		mesh.Cap = append(mesh.Cap, center, uint8(i), uint8((i+2)%rim))
	}

	return mesh
}

// Indices returns Body followed by Cap, for a single index buffer.
// The cap starts at byte offset len(Body).
func (m ConeMesh) Indices() []uint8 {
	out := make([]uint8, 0, len(m.Body)+len(m.Cap))
	out = append(out, m.Body...)
	return append(out, m.Cap...)
}

// PackVertices2D serializes vertices with the Stride2D layout.
func PackVertices2D(vertices []Vertex2D) []byte {
	buf := make([]byte, 0, len(vertices)*Stride2D)
	for _, v := range vertices {
		buf = appendFloats(buf, v.Position.X, v.Position.Y)
		buf = appendFloats(buf, v.Color[:]...)
	}
	return buf
}

// PackVertices3D serializes vertices with the Stride3D layout.
func PackVertices3D(vertices []Vertex3D) []byte {
	buf := make([]byte, 0, len(vertices)*Stride3D)
	for _, v := range vertices {
		buf = appendFloats(buf, v.Position.X, v.Position.Y, v.Position.Z)
		buf = appendFloats(buf, v.Color[:]...)
	}
	return buf
}

func appendFloats(buf []byte, vals ...float32) []byte {
	for _, f := range vals {
		buf = binary.LittleEndian.AppendUint32(buf, gomath.Float32bits(f))
	}
	return buf
}
