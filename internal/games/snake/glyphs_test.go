package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestConnector(t *testing.T) {
	tests := []struct {
		prev, next core.Direction
		expected   rune
	}{
		{core.DirUp, core.DirUp, '║'},
		{core.DirUp, core.DirRight, '╔'},
		{core.DirUp, core.DirLeft, '╗'},
		{core.DirDown, core.DirDown, '║'},
		{core.DirDown, core.DirRight, '╚'},
		{core.DirDown, core.DirLeft, '╝'},
		{core.DirLeft, core.DirLeft, '═'},
		{core.DirLeft, core.DirUp, '╚'},
		{core.DirLeft, core.DirDown, '╔'},
		{core.DirRight, core.DirRight, '═'},
		{core.DirRight, core.DirUp, '╝'},
		{core.DirRight, core.DirDown, '╗'},
	}

	for _, tc := range tests {
		if got := Connector(tc.prev, tc.next); got != tc.expected {
			t.Errorf("Connector(%v, %v) = %q, expected %q", tc.prev, tc.next, got, tc.expected)
		}
	}
}

func TestConnectorInvalid(t *testing.T) {
	if got := Connector(core.Direction(7), core.DirUp); got != headRune {
		t.Errorf("Connector(invalid, up) = %q, expected %q", got, headRune)
	}
}

func TestStepDirection(t *testing.T) {
	tests := []struct {
		from, to core.Coordinate
		expected core.Direction
	}{
		{core.At(10, 5), core.At(10, 4), core.DirUp},
		{core.At(10, 5), core.At(10, 6), core.DirDown},
		{core.At(10, 5), core.At(12, 5), core.DirRight},
		{core.At(10, 5), core.At(8, 5), core.DirLeft},
		{core.At(10, 1), core.At(10, 19), core.DirUp},
		{core.At(38, 5), core.At(2, 5), core.DirRight},
	}
	for _, tc := range tests {
		if got := stepDirection(tc.from, tc.to); got != tc.expected {
			t.Errorf("stepDirection(%v, %v) = %v, expected %v", tc.from, tc.to, got, tc.expected)
		}
	}
}
