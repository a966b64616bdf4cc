package internal

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Horizontal is the combined left and right padding.
func (p Padding) Horizontal() int32 {
	return p.Left + p.Right
}

// Vertical is the combined top and bottom padding.
func (p Padding) Vertical() int32 {
	return p.Top + p.Bottom
}

func Max32(a, b int32) int32 {
	return max(a, b)
}

func Min32(a, b int32) int32 {
	return min(a, b)
}
