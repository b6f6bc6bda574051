// Package camera holds the free-fly viewer: position and orientation,
// projection parameters, picking rays and the view cone used for chunk
// culling.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Camera struct {
	Position   mgl32.Vec3 // Camera position in world space
	Front      mgl32.Vec3 // Forward direction vector
	Up         mgl32.Vec3 // Up direction vector
	Right      mgl32.Vec3 // Right direction vector
	Projection mgl32.Mat4 // Projection matrix
	Pitch      float32    // Pitch angle in degrees
	Yaw        float32    // Yaw angle in degrees

	WorldUp     mgl32.Vec3 // World up vector, usually (0,1,0)
	Speed       float32    // Movement speed in units per second
	Sensitivity float32    // Mouse sensitivity
	Fov         float32    // Vertical field of view in degrees
	Near        float32    // Near clipping plane
	Far         float32    // Far clipping plane
	AspectRatio float32    // Screen width over height
	InvertMouse bool       // Invert mouse Y axis
}

func New(fov, aspectRatio, near, far float32) *Camera {
	camera := Camera{
		Front:       mgl32.Vec3{0, 0, -1},
		Up:          mgl32.Vec3{0, 1, 0},
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Pitch:       0.0,
		Yaw:         -90.0,
		Speed:       70,
		Sensitivity: 0.1,
		Fov:         fov,
		Near:        near,
		Far:         far,
		AspectRatio: aspectRatio,
	}
	camera.updateCameraVectors()
	camera.UpdateProjection()
	return &camera
}

func (c *Camera) UpdateProjection() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
}

func (c *Camera) SetFov(fov float32) {
	c.Fov = fov
	c.UpdateProjection()
}

func (c *Camera) SetAspectRatio(aspectRatio float32) {
	c.AspectRatio = aspectRatio
	c.UpdateProjection()
}

// HalfVFov is the vertical half field of view in radians.
func (c *Camera) HalfVFov() float32 {
	return mgl32.DegToRad(c.Fov) * 0.5
}

// HalfHFov is the horizontal half field of view in radians, derived from
// the vertical one and the aspect ratio.
func (c *Camera) HalfHFov() float32 {
	return float32(math.Atan(math.Tan(float64(c.HalfVFov())) * float64(c.AspectRatio)))
}

func (c *Camera) GetViewProjection() mgl32.Mat4 {
	return c.Projection.Mul4(c.GetViewMatrix())
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return c.Projection
}

func (c *Camera) MoveForward(velocity float32) {
	c.Position = c.Position.Add(c.Front.Mul(velocity))
}

func (c *Camera) MoveBackward(velocity float32) {
	c.Position = c.Position.Sub(c.Front.Mul(velocity))
}

func (c *Camera) MoveRight(velocity float32) {
	c.Position = c.Position.Add(c.Right.Mul(velocity))
}

func (c *Camera) MoveLeft(velocity float32) {
	c.Position = c.Position.Sub(c.Right.Mul(velocity))
}

func (c *Camera) MoveUp(velocity float32) {
	c.Position = c.Position.Add(c.Up.Mul(velocity))
}

func (c *Camera) MoveDown(velocity float32) {
	c.Position = c.Position.Sub(c.Up.Mul(velocity))
}

func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {
	xoffset *= c.Sensitivity
	yoffset *= c.Sensitivity

	c.Yaw += xoffset

	if c.InvertMouse {
		c.Pitch -= yoffset
	} else {
		c.Pitch += yoffset
	}
	if constrainPitch {
		c.Pitch = mgl32.Clamp(c.Pitch, -89.0, 89.0) // Prevent extreme pitch values
	}
	c.updateCameraVectors()
}

// LookAt points the camera at a world position.
func (c *Camera) LookAt(target mgl32.Vec3) {
	direction := target.Sub(c.Position).Normalize()
	c.Yaw = mgl32.RadToDeg(float32(math.Atan2(float64(direction.Z()), float64(direction.X()))))
	pitch := math.Atan2(float64(direction.Y()),
		math.Sqrt(float64(direction.X()*direction.X()+direction.Z()*direction.Z())))
	c.Pitch = mgl32.Clamp(mgl32.RadToDeg(float32(pitch)), -89.0, 89.0)
	c.updateCameraVectors()
}

func (c *Camera) updateCameraVectors() {
	yawRad := mgl32.DegToRad(c.Yaw)
	pitchRad := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		float32(math.Cos(float64(yawRad)) * math.Cos(float64(pitchRad))),
		float32(math.Sin(float64(pitchRad))),
		float32(math.Sin(float64(yawRad)) * math.Cos(float64(pitchRad))),
	}

	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
