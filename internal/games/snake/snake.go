package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snake is an ordered body with the head at index 0.
type Snake struct {
	body    []core.Coordinate
	heading core.Direction
}

// NewSnake creates a snake whose body trails behind head, opposite to the
// heading.
func NewSnake(head core.Coordinate, length int, heading core.Direction) *Snake {
	if length < 1 {
		length = 1
	}
	body := make([]core.Coordinate, length)
	back := heading.Opposite()
	c := head
	for i := range body {
		body[i] = c
		c = c.Step(back)
	}
	return &Snake{body: body, heading: heading}
}

// SnakeFromBody creates a snake with an explicit body, head first.
func SnakeFromBody(body []core.Coordinate, heading core.Direction) *Snake {
	return &Snake{body: append([]core.Coordinate(nil), body...), heading: heading}
}

// Head returns the head coordinate.
func (s *Snake) Head() core.Coordinate { return s.body[0] }

// Tail returns the last segment.
func (s *Snake) Tail() core.Coordinate { return s.body[len(s.body)-1] }

// Len returns the number of segments.
func (s *Snake) Len() int { return len(s.body) }

// Heading returns the current heading.
func (s *Snake) Heading() core.Direction { return s.heading }

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []core.Coordinate {
	return append([]core.Coordinate(nil), s.body...)
}

// Contains reports whether any segment, tail included, sits at c.
func (s *Snake) Contains(c core.Coordinate) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

func (s *Snake) pushHead(c core.Coordinate, heading core.Direction) {
	s.body = append(s.body, core.Coordinate{})
	copy(s.body[1:], s.body)
	s.body[0] = c
	s.heading = heading
}

func (s *Snake) popTail() core.Coordinate {
	tail := s.body[len(s.body)-1]
	s.body = s.body[:len(s.body)-1]
	return tail
}
