package camera

import "github.com/go-gl/mathgl/mgl32"

// Ray is a world-space picking ray.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// ForwardRay is the picking ray through the center of the view, the one a
// crosshair aims along.
func (c *Camera) ForwardRay() Ray {
	return Ray{Origin: c.Position, Direction: c.Front}
}

// ScreenRay converts a screen position to a world-space ray by walking the
// position back through the projection and view transforms.
func (c *Camera) ScreenRay(screenX, screenY float32, windowWidth, windowHeight int) Ray {
	// Normalize the screen position to NDC, -1 to 1 on both axes.
	ndcX := 2.0*screenX/float32(windowWidth) - 1.0
	ndcY := 1.0 - 2.0*screenY/float32(windowHeight)

	clipCoords := mgl32.Vec4{ndcX, ndcY, -1.0, 1.0}

	// Clip space to eye space, keeping the ray pointing down -Z.
	invProjection := c.Projection.Inv()
	eyeCoords := invProjection.Mul4x1(clipCoords)
	eyeCoords = mgl32.Vec4{eyeCoords.X(), eyeCoords.Y(), -1.0, 0.0}

	// Eye space to world space.
	invView := c.GetViewMatrix().Inv()
	direction := invView.Mul4x1(eyeCoords).Vec3().Normalize()

	return Ray{Origin: c.Position, Direction: direction}
}
