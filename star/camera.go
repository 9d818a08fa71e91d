package star

import "github.com/go-gl/mathgl/mgl32"

// Camera is a 2D world-space camera: it maps an axis-aligned window of
// the world (Center, Size) onto clip space.
type Camera struct {
	Center mgl32.Vec2
	Size   mgl32.Vec2
}

// NewCamera returns the camera framing the star scene: a 150x150 world
// window centered on the orbit center.
func NewCamera() Camera {
	return Camera{
		Center: mgl32.Vec2{20, 30},
		Size:   mgl32.Vec2{150, 150},
	}
}

// View returns the view matrix, translating the camera center to the
// origin.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.Translate3D(-c.Center[0], -c.Center[1], 0)
}

// Projection returns the orthographic projection scaling the camera
// window to the [-1, 1] clip square.
func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Scale3D(2/c.Size[0], 2/c.Size[1], 1)
}

// VP returns the combined view-projection matrix.
func (c Camera) VP() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}
