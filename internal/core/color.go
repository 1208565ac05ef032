package core

// Color is the role of a screen cell. Renderers pick the actual shade:
// an ANSI 256 code in the terminal, RGBA in the window.
type Color uint8

// Cell roles. ColorNotice marks collaborator failures and confirmations.
const (
	ColorDefault Color = iota
	ColorObstacle
	ColorFlyer
	ColorCrashed
	ColorHUD
	ColorName
	ColorNotice
	ColorFrame
	ColorTitle
)
