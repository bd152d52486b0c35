package constants

import "github.com/gdamore/tcell/v2"

// Board palette
var (
	ColorBoard    = tcell.NewHexColor(0x86B5BD)
	ColorBody     = tcell.NewHexColor(0xC8F7C5)
	ColorHead     = tcell.NewHexColor(0x336E7B)
	ColorFruit    = tcell.NewHexColor(0xEC644B)
	ColorGameOver = tcell.NewHexColor(0xD24D57)
)

// HUD palette
var (
	ColorHUDText   = tcell.NewHexColor(0xE4F1FE)
	ColorHUDAccent = tcell.NewHexColor(0xF5D76E)
	ColorHUDMuted  = tcell.NewHexColor(0x6C7A89)
	ColorMenuBg    = tcell.NewHexColor(0x2C3E50)
	ColorScreenBg  = tcell.ColorBlack
)

// Layout
const (
	// CellWidth is the number of terminal columns per board cell, keeps cells roughly square
	CellWidth = 2

	// HUDHeight is the number of rows reserved above the board
	HUDHeight = 2

	// FooterHeight is the number of rows reserved below the board for key help
	FooterHeight = 1

	// BorderSize is the frame thickness around the board
	BorderSize = 1
)

// CellRune fills board cells, colour comes from the background
const CellRune = ' '

// Messages
const (
	TitleText     = "vi-snake"
	NewBestText   = "NEW BEST!"
	PausedText    = "PAUSED"
	TooSmallText  = "terminal too small"
	IdleHelpText  = "enter play  1 classic  2 no walls  m menu  q quit"
	PlayHelpText  = "arrows/hjkl/wasd move  p pause  ctrl+s sound  q quit"
	MenuTitleText = "select mode"
)
