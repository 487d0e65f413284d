package core

// Color represents a foreground color for a screen cell.
// The platform layer decides how each value is displayed.
type Color uint8

// Palette roles used by the maze renderer.
const (
	ColorDefault Color = iota
	ColorWall
	ColorFloor
	ColorPlayer
	ColorGoal
	ColorHUD
	ColorTitle
	ColorAccent
	ColorMuted
)
