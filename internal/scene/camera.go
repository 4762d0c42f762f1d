package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Orbit camera defaults.
const (
	DefaultPitch       = 30.0
	DefaultDistance    = 30.0
	DefaultSensitivity = 0.3
	DefaultZoomSpeed   = 1.0
	MinDistance        = 5.0
	MaxPitch           = 90.0

	FovY = 45.0
	Near = 0.1
	Far  = 100.0
)

// OrbitCamera circles the origin. Angles are in degrees.
type OrbitCamera struct {
	Yaw      float64
	Pitch    float64
	Distance float64

	Sensitivity float64 // degrees per pixel of drag
	ZoomSpeed   float64 // distance units per scroll notch
}

func NewOrbitCamera(distance float64) *OrbitCamera {
	c := &OrbitCamera{
		Pitch:       DefaultPitch,
		Distance:    distance,
		Sensitivity: DefaultSensitivity,
		ZoomSpeed:   DefaultZoomSpeed,
	}
	c.Clamp()
	return c
}

// Drag rotates the camera by a pointer delta in window pixels.
func (c *OrbitCamera) Drag(dx, dy float64) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity
	c.Clamp()
}

// Scroll zooms; positive deltas move the eye towards the origin.
func (c *OrbitCamera) Scroll(delta float64) {
	c.Distance -= delta * c.ZoomSpeed
	c.Clamp()
}

func (c *OrbitCamera) Clamp() {
	if c.Pitch > MaxPitch {
		c.Pitch = MaxPitch
	}
	if c.Pitch < -MaxPitch {
		c.Pitch = -MaxPitch
	}
	if c.Distance < MinDistance {
		c.Distance = MinDistance
	}
}

// Eye returns the camera position on its sphere.
func (c *OrbitCamera) Eye() mgl32.Vec3 {
	ax := c.Pitch * math.Pi / 180
	ay := c.Yaw * math.Pi / 180
	return mgl32.Vec3{
		float32(c.Distance * math.Cos(ax) * math.Sin(ay)),
		float32(c.Distance * math.Sin(ax)),
		float32(c.Distance * math.Cos(ax) * math.Cos(ay)),
	}
}

// View looks from Eye towards the origin with +Y up.
func (c *OrbitCamera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
}

// Projection returns the scene perspective for a framebuffer size.
func Projection(fbW, fbH int) mgl32.Mat4 {
	aspect := float32(1)
	if fbW > 0 && fbH > 0 {
		aspect = float32(fbW) / float32(fbH)
	}
	return mgl32.Perspective(mgl32.DegToRad(FovY), aspect, Near, Far)
}

// Overlay returns the pixel-space orthographic matrix used for the text
// pass. The origin is the bottom-left corner.
func Overlay(fbW, fbH int) mgl32.Mat4 {
	return mgl32.Ortho(0, float32(fbW), 0, float32(fbH), -1, 1)
}
