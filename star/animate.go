package star

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// rotationSpeed is the angular velocity of both rotations, one full
// revolution every ten seconds.
const rotationSpeed = 2 * math.Pi / 10

// Animator holds the star's animation state: a spin around its own
// center combined with an orbit around a second center, both advancing
// at the same angular velocity.
type Animator struct {
	StarCenter   mgl32.Vec2
	CircleCenter mgl32.Vec2

	phi          float32
	selfRotation float32
	running      bool
	reference    time.Time
}

// NewAnimator returns an animator with the default rotation centers,
// stopped at time zero.
func NewAnimator() *Animator {
	return &Animator{
		StarCenter:   mgl32.Vec2{50, 30},
		CircleCenter: mgl32.Vec2{20, 30},
	}
}

// Toggle starts the animation if it is stopped and stops it if it is
// running, and reports the new state. The clock resets on every call,
// so resuming restarts the motion from time zero rather than where it
// paused.
func (a *Animator) Toggle(now time.Time) bool {
	a.reference = now
	a.running = !a.running
	return a.running
}

// Running reports whether the animation is advancing.
func (a *Animator) Running() bool {
	return a.running
}

// Advance updates the rotation angles for the given wall-clock instant.
// It does nothing while the animation is stopped.
func (a *Animator) Advance(now time.Time) {
	if !a.running {
		return
	}
	a.SetTime(float32(now.Sub(a.reference).Seconds()))
}

// SetTime sets both rotation angles to the ones reached t seconds into
// the animation.
func (a *Animator) SetTime(t float32) {
	a.phi = t * rotationSpeed
	a.selfRotation = t * rotationSpeed
}

// Phi returns the current orbit angle in radians.
func (a *Animator) Phi() float32 {
	return a.phi
}

// SelfRotation returns the current spin angle in radians.
func (a *Animator) SelfRotation() float32 {
	return a.selfRotation
}

// Model returns the model matrix for the current angles: a spin around
// StarCenter followed by an orbit around CircleCenter.
func (a *Animator) Model() mgl32.Mat4 {
	orbit := rotateAbout(a.phi, a.CircleCenter)
	spin := rotateAbout(a.selfRotation, a.StarCenter)
	return orbit.Mul4(spin)
}

// rotateAbout builds a rotation by angle radians around the z axis
// through the given world point.
func rotateAbout(angle float32, center mgl32.Vec2) mgl32.Mat4 {
	to := mgl32.Translate3D(center[0], center[1], 0)
	rot := mgl32.HomogRotate3D(angle, mgl32.Vec3{0, 0, 1})
	back := mgl32.Translate3D(-center[0], -center[1], 0)
	return to.Mul4(rot).Mul4(back)
}
