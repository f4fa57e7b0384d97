// internal/component/render.go
package component

import "image/color"

// Renderable carries what drawing and contact tests need.
type Renderable struct {
	Color  color.RGBA
	Radius float32
}
