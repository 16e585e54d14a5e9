package core

// Color is a semantic foreground colour for a screen cell. Games pick the
// role; the host decides what each role looks like on a terminal.
type Color uint8

// Colour roles.
const (
	ColorDefault Color = iota
	ColorWall
	ColorDot
	ColorPellet
	ColorActor
	ColorText
	ColorDim
	ColorAccent
)
