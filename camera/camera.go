// Package camera provides the 2D viewport that follows the player.
package camera

import (
	"math"

	"github.com/rranshous/raceon/vec"
)

// Camera controls the viewport into the world. The view is clamped so it
// never shows past the world edges; when the world is smaller than the
// view on an axis, the camera centers that axis.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float64

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float64

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float64

	// World dimensions (for view clamping)
	WorldW, WorldH float64

	// Zoom constraints
	MinZoom, MaxZoom float64

	// FollowRate is the exponential follow speed in 1/seconds.
	FollowRate float64
}

// New creates a camera centered on the world.
// followRate <= 0 falls back to a sensible default.
func New(viewportW, viewportH, worldW, worldH, followRate float64) *Camera {
	if followRate <= 0 {
		followRate = 6.0
	}

	// Minimum zoom keeps the visible area inside the world:
	// viewportW/Z <= worldW AND viewportH/Z <= worldH.
	minZoom := viewportW / worldW
	if z := viewportH / worldH; z > minZoom {
		minZoom = z
	}

	c := &Camera{
		X:          worldW / 2,
		Y:          worldH / 2,
		Zoom:       clamp(1.0, minZoom, 4.0),
		ViewportW:  viewportW,
		ViewportH:  viewportH,
		WorldW:     worldW,
		WorldH:     worldH,
		MinZoom:    minZoom,
		MaxZoom:    4.0,
		FollowRate: followRate,
	}
	c.clampToWorld()
	return c
}

// SnapTo centers the camera on a point immediately.
func (c *Camera) SnapTo(p vec.Vec2) {
	c.X = p.X
	c.Y = p.Y
	c.clampToWorld()
}

// Follow eases the camera toward the target with exponential smoothing,
// so the response is framerate-independent.
func (c *Camera) Follow(target vec.Vec2, dt float64) {
	if dt <= 0 {
		return
	}
	t := 1 - math.Exp(-c.FollowRate*dt)
	c.X += (target.X - c.X) * t
	c.Y += (target.Y - c.Y) * t
	c.clampToWorld()
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(p vec.Vec2) vec.Vec2 {
	return vec.New(
		c.ViewportW/2+(p.X-c.X)*c.Zoom,
		c.ViewportH/2+(p.Y-c.Y)*c.Zoom,
	)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(p vec.Vec2) vec.Vec2 {
	return vec.New(
		c.X+(p.X-c.ViewportW/2)/c.Zoom,
		c.Y+(p.Y-c.ViewportH/2)/c.Zoom,
	)
}

// IsVisible returns true if a circle at p with the given radius could be
// visible on screen (conservative check for culling).
func (c *Camera) IsVisible(p vec.Vec2, radius float64) bool {
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	return math.Abs(p.X-c.X) <= halfW && math.Abs(p.Y-c.Y) <= halfH
}

// VisibleWorldBounds returns the world-coordinate bounds of the visible
// area as (minX, minY, maxX, maxY).
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float64) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)
	return c.X - halfW, c.Y - halfH, c.X + halfW, c.Y + halfH
}

// Resize updates viewport dimensions and recalculates zoom constraints.
func (c *Camera) Resize(viewportW, viewportH float64) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH

	c.MinZoom = viewportW / c.WorldW
	if z := viewportH / c.WorldH; z > c.MinZoom {
		c.MinZoom = z
	}
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
	c.clampToWorld()
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
	c.clampToWorld()
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float64) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the world center at default zoom.
func (c *Camera) Reset() {
	c.X = c.WorldW / 2
	c.Y = c.WorldH / 2
	c.Zoom = clamp(1.0, c.MinZoom, c.MaxZoom)
	c.clampToWorld()
}

// clampToWorld keeps the visible area inside the world bounds.
func (c *Camera) clampToWorld() {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)

	if c.WorldW <= 2*halfW {
		c.X = c.WorldW / 2
	} else {
		c.X = clamp(c.X, halfW, c.WorldW-halfW)
	}

	if c.WorldH <= 2*halfH {
		c.Y = c.WorldH / 2
	} else {
		c.Y = clamp(c.Y, halfH, c.WorldH-halfH)
	}
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
