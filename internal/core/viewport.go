package core

import "math"

// Viewport maps a fixed-size window of the world onto the terminal grid.
// The world is y-up with the floor at y=0; terminal rows grow downward.
// CameraX is the world x at the horizontal center of the view.
type Viewport struct {
	WorldW  float64 // Visible world width
	WorldH  float64 // Visible world height
	ScreenW int     // Terminal columns
	ScreenH int     // Terminal rows
	CameraX float64
}

// scaleX returns cells per world unit horizontally.
func (v Viewport) scaleX() float64 {
	return float64(v.ScreenW) / v.WorldW
}

// scaleY returns cells per world unit vertically.
func (v Viewport) scaleY() float64 {
	return float64(v.ScreenH) / v.WorldH
}

// Left returns the world x of the left edge of the view.
func (v Viewport) Left() float64 {
	return v.CameraX - v.WorldW/2
}

// ToWorld converts a terminal cell to the world point at the cell's center.
func (v Viewport) ToWorld(col, row int) (x, y float64) {
	x = v.Left() + (float64(col)+0.5)/v.scaleX()
	y = (float64(v.ScreenH-row) - 0.5) / v.scaleY()
	return x, y
}

// ToCell converts a world point to the terminal cell containing it.
func (v Viewport) ToCell(x, y float64) (col, row int) {
	col = int(math.Floor((x - v.Left()) * v.scaleX()))
	row = v.ScreenH - 1 - int(math.Floor(y*v.scaleY()))
	return col, row
}

// ToCellRect converts a world rectangle to the cells it covers.
// Any non-empty rectangle covers at least one cell.
func (v Viewport) ToCellRect(r Rect) CellRect {
	left := int(math.Floor((r.X - v.Left()) * v.scaleX()))
	right := int(math.Ceil((r.Right() - v.Left()) * v.scaleX()))
	top := v.ScreenH - int(math.Ceil(r.Top()*v.scaleY()))
	bottom := v.ScreenH - int(math.Floor(r.Y*v.scaleY()))

	if r.W > 0 && right <= left {
		right = left + 1
	}
	if r.H > 0 && bottom <= top {
		bottom = top + 1
	}
	return CellRect{X: left, Y: top, W: right - left, H: bottom - top}
}
