package tui

type state int

const (
	categoriesState state = iota
	colorsState
	recentState
	errorState
)
