// Package star models the textured star shown by the tiling viewers: a
// ten-vertex triangle fan in world coordinates, a 2D camera, and the
// animation state driving the star's double rotation.
package star

import "github.com/go-gl/mathgl/mgl32"

// FanVertexCount is the number of vertices in the star's triangle fan.
// The first vertex is the fan center; the last repeats the first rim
// vertex to close the fan.
const FanVertexCount = 10

// Vertex is one fan vertex: a world-space position and the texture
// coordinate sampling the tiling.
type Vertex struct {
	Pos mgl32.Vec2
	UV  mgl32.Vec2
}

func defaultVertices() [FanVertexCount]Vertex {
	return [FanVertexCount]Vertex{
		{Pos: mgl32.Vec2{50, 30}, UV: mgl32.Vec2{0.5, 0.5}},
		{Pos: mgl32.Vec2{70, 30}, UV: mgl32.Vec2{1, 0.5}},
		{Pos: mgl32.Vec2{90, 70}, UV: mgl32.Vec2{1, 1}},
		{Pos: mgl32.Vec2{50, 50}, UV: mgl32.Vec2{0.5, 1}},
		{Pos: mgl32.Vec2{10, 70}, UV: mgl32.Vec2{0, 1}},
		{Pos: mgl32.Vec2{30, 30}, UV: mgl32.Vec2{0, 0.5}},
		{Pos: mgl32.Vec2{10, -10}, UV: mgl32.Vec2{0, 0}},
		{Pos: mgl32.Vec2{50, 10}, UV: mgl32.Vec2{0.5, 0}},
		{Pos: mgl32.Vec2{90, -10}, UV: mgl32.Vec2{1, 0}},
		{Pos: mgl32.Vec2{70, 30}, UV: mgl32.Vec2{1, 0.5}},
	}
}

// Star is the fan geometry. Pinch deformations accumulate on the vertex
// positions; texture coordinates never change.
type Star struct {
	verts [FanVertexCount]Vertex
}

// NewStar creates a star with the default fan geometry.
func NewStar() *Star {
	return &Star{verts: defaultVertices()}
}

// Pinch moves the four edge-midpoint vertices inward by amount (outward
// for negative values). Midpoints are identified by their texture
// coordinates, so the closing rim vertex moves together with its twin.
func (s *Star) Pinch(amount float32) {
	for i := range s.verts {
		v := &s.verts[i]
		switch {
		case v.UV[0] == 0.5 && v.UV[1] == 1:
			v.Pos[1] -= amount
		case v.UV[0] == 0.5 && v.UV[1] == 0:
			v.Pos[1] += amount
		case v.UV[0] == 0 && v.UV[1] == 0.5:
			v.Pos[0] += amount
		case v.UV[0] == 1 && v.UV[1] == 0.5:
			v.Pos[0] -= amount
		}
	}
}

// Reset restores the default geometry, undoing any accumulated pinch.
func (s *Star) Reset() {
	s.verts = defaultVertices()
}

// Vertex returns the i-th fan vertex.
func (s *Star) Vertex(i int) Vertex {
	return s.verts[i]
}

// Vertices returns the fan as interleaved x, y, u, v float32 data, ready
// for a single vertex buffer upload.
func (s *Star) Vertices() []float32 {
	out := make([]float32, 0, FanVertexCount*4)
	for _, v := range s.verts {
		out = append(out, v.Pos[0], v.Pos[1], v.UV[0], v.UV[1])
	}
	return out
}
