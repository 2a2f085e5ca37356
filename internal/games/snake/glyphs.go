package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Glyph runes.
const (
	headRune = 'O'
	itemRune = '*'
	gapRune  = '═'

	frameTopLeft     = '╔'
	frameTopRight    = '╗'
	frameBottomLeft  = '╚'
	frameBottomRight = '╝'
	frameHorizontal  = '═'
	frameVertical    = '║'
)

// connectors holds the body glyph drawn in the cell a head leaves, indexed
// by [previous heading][new heading]. Reversals never reach the table, so
// their entries just repeat the straight piece.
var connectors = [4][4]rune{
	core.DirUp: {
		core.DirUp:    '║',
		core.DirRight: '╔',
		core.DirDown:  '║',
		core.DirLeft:  '╗',
	},
	core.DirRight: {
		core.DirUp:    '╝',
		core.DirRight: '═',
		core.DirDown:  '╗',
		core.DirLeft:  '═',
	},
	core.DirDown: {
		core.DirUp:    '║',
		core.DirRight: '╚',
		core.DirDown:  '║',
		core.DirLeft:  '╝',
	},
	core.DirLeft: {
		core.DirUp:    '╚',
		core.DirRight: '═',
		core.DirDown:  '╔',
		core.DirLeft:  '═',
	},
}

// Connector returns the body glyph for a segment entered moving prev and
// left moving next.
func Connector(prev, next core.Direction) rune {
	if !prev.Valid() || !next.Valid() {
		return headRune
	}
	return connectors[prev][next]
}
