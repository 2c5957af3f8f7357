// Package coords converts points between world space (y up, arbitrary units)
// and screen space (y down, pixels) for a camera looking at a 2D scene.
package coords

type Vec2 struct {
	X float64
	Y float64
}

type Camera struct {
	// Center is the world-space point shown at the middle of the viewport.
	Center Vec2
	// PixelsPerUnit scales world units to pixels, > 0.
	PixelsPerUnit float64
	// viewport size in pixels
	ViewportWidth  float64
	ViewportHeight float64
}

func (c Camera) WorldToScreen(p Vec2) Vec2 {
	return Vec2{
		X: (p.X-c.Center.X)*c.PixelsPerUnit + c.ViewportWidth/2,
		// screen y grows downward
		Y: c.ViewportHeight/2 - (p.Y-c.Center.Y)*c.PixelsPerUnit,
	}
}

func (c Camera) ScreenToWorld(p Vec2) Vec2 {
	return Vec2{
		X: (p.X-c.ViewportWidth/2)/c.PixelsPerUnit + c.Center.X,
		Y: (c.ViewportHeight/2-p.Y)/c.PixelsPerUnit + c.Center.Y,
	}
}
