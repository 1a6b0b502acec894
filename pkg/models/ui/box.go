package ui

import "github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"

// BoxRect returns the top-left corner and side length of the filled area of box.
func (l Layout) BoxRect(box chess.Box) (x, y, size float32) {
	x, y = l.DotPosition(chess.Dot(box))
	return x + l.DotWidth/2, y + l.DotWidth/2, l.DotDistance - l.DotWidth
}
