package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Frustum culls bounding spheres against the camera's view cone. Instead of
// extracting six planes from the view-projection matrix it works in the
// camera's own basis, comparing each sphere center's forward, up and right
// components against the field-of-view slopes. The trigonometric factors
// are computed once here, so build the Frustum after the camera's field of
// view and aspect ratio are final.
type Frustum struct {
	cam     *Camera
	factorY float32 // 1/cos(halfV), scales the radius onto the top/bottom slopes
	tanY    float32
	factorX float32 // 1/cos(halfH), same for the left/right slopes
	tanX    float32
}

func NewFrustum(cam *Camera) *Frustum {
	halfY := float64(cam.HalfVFov())
	halfX := float64(cam.HalfHFov())
	return &Frustum{
		cam:     cam,
		factorY: float32(1.0 / math.Cos(halfY)),
		tanY:    float32(math.Tan(halfY)),
		factorX: float32(1.0 / math.Cos(halfX)),
		tanX:    float32(math.Tan(halfX)),
	}
}

// ContainsSphere reports whether a bounding sphere is at least partly
// inside the view cone. The test is conservative, a sphere just outside a
// slope can still pass, but a sphere with any visible part never fails.
func (f *Frustum) ContainsSphere(center mgl32.Vec3, radius float32) bool {
	v := center.Sub(f.cam.Position)

	// Near and far limits first, the cheapest rejection.
	sz := v.Dot(f.cam.Front)
	if sz < f.cam.Near-radius || sz > f.cam.Far+radius {
		return false
	}

	// Top and bottom slopes.
	sy := v.Dot(f.cam.Up)
	dist := f.factorY*radius + sz*f.tanY
	if sy < -dist || sy > dist {
		return false
	}

	// Left and right slopes.
	sx := v.Dot(f.cam.Right)
	dist = f.factorX*radius + sz*f.tanX
	if sx < -dist || sx > dist {
		return false
	}

	return true
}
