package ui

import "github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"

const (
	DefaultDotDistance = float32(75)
	DefaultDotWidth    = float32(15)
	DefaultDotMargin   = float32(50)
)

// Layout maps lattice coordinates to pixels and back.
type Layout struct {
	BoardSize   int
	DotDistance float32
	DotWidth    float32
	DotMargin   float32
}

func NewLayout(boardSize int) Layout {
	return Layout{
		BoardSize:   boardSize,
		DotDistance: DefaultDotDistance,
		DotWidth:    DefaultDotWidth,
		DotMargin:   DefaultDotMargin,
	}
}

func (l Layout) getPosition(p int) float32 {
	return l.DotMargin + float32(p)*l.DotDistance
}

// DotPosition returns the pixel center of d.
func (l Layout) DotPosition(d chess.Dot) (float32, float32) {
	return l.getPosition(d.X()), l.getPosition(d.Y())
}

// Size is the width and height of the whole board in pixels.
func (l Layout) Size() float32 {
	return l.DotDistance*float32(l.BoardSize-1) + 2*l.DotMargin
}
