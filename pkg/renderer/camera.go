package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CameraConfig contains the look-at parameters of a pinhole camera
type CameraConfig struct {
	Center core.Point3D // Camera position
	LookAt core.Point3D // Point the camera is looking at
	Up     core.Vector  // Up direction (usually 0,1,0)
	VFov   float64      // Vertical field of view in degrees
}

// Validate checks that the camera can be constructed
func (c CameraConfig) Validate() error {
	if c.VFov <= 0 || c.VFov >= 180 {
		return fmt.Errorf("%w: vertical field of view must be in (0,180) degrees, got %g", core.ErrInvalidArgument, c.VFov)
	}
	if c.Center.Equals(c.LookAt) {
		return fmt.Errorf("%w: camera center and look-at point coincide at %v", core.ErrInvalidArgument, c.Center)
	}
	return nil
}

// Camera generates primary rays through the pixels of an image
type Camera struct {
	origin          core.Point3D
	lowerLeftCorner core.Point3D
	horizontal      core.Vector
	vertical        core.Vector
	width, height   int
}

// NewCamera creates a camera for an image of the given size
func NewCamera(config CameraConfig, width, height int) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image size must be positive, got %dx%d", core.ErrInvalidArgument, width, height)
	}

	// Orthonormal basis: w points backwards, u right, v up
	w, err := config.Center.Subtract(config.LookAt).Normalize()
	if err != nil {
		return nil, err
	}
	u, err := config.Up.Cross(w).Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: up vector %v is parallel to the view direction", core.ErrInvalidArgument, config.Up)
	}
	v := w.Cross(u)

	aspectRatio := float64(width) / float64(height)
	viewportHeight := 2.0 * math.Tan(config.VFov*math.Pi/360.0)
	viewportWidth := aspectRatio * viewportHeight

	horizontal := u.Scale(viewportWidth)
	vertical := v.Scale(viewportHeight)
	lowerLeftCorner := config.Center.
		Add(horizontal.Scale(-0.5)).
		Add(vertical.Scale(-0.5)).
		Add(w.Negate())

	return &Camera{
		origin:          config.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		width:           width,
		height:          height,
	}, nil
}

// GetRay returns the ray through pixel (i, j), offset inside the pixel by
// (su, sv) in [0,1). Pixel rows run top to bottom.
func (c *Camera) GetRay(i, j int, su, sv float64) core.Ray {
	s := (float64(i) + su) / float64(c.width)
	t := 1.0 - (float64(j)+sv)/float64(c.height)

	target := c.lowerLeftCorner.
		Add(c.horizontal.Scale(s)).
		Add(c.vertical.Scale(t))

	// The viewport sits one unit in front of the origin, so the direction is never zero
	direction, _ := target.Subtract(c.origin).Normalize()
	return core.Ray{Origin: c.origin, Direction: direction}
}

// GetForward returns the unit view direction
func (c *Camera) GetForward() core.Vector {
	center := c.lowerLeftCorner.Add(c.horizontal.Scale(0.5)).Add(c.vertical.Scale(0.5))
	forward, _ := center.Subtract(c.origin).Normalize()
	return forward
}
