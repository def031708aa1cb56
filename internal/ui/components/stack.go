package components

import (
	"github.com/alexisbeaulieu97/stylebox/internal/style"
	"github.com/alexisbeaulieu97/stylebox/internal/ui"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

func (d Direction) flexDirection() string {
	if d == DirectionHorizontal {
		return "row"
	}
	return "column"
}

// Stack is a Box that lays its children out in one direction with a gap
// taken from the spacing scale.
type Stack struct {
	*Box
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...ui.Renderable) *Stack {
	box := NewBox(children...).WithProps(style.Props{"flexDirection": "column"})
	return &Stack{Box: box}
}

// VStack creates a vertical stack (convenience constructor).
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack (convenience constructor).
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.SetProps(style.Props{"flexDirection": dir.flexDirection()})
	return s
}

// WithGap sets the spacing token between children.
func (s *Stack) WithGap(token string) *Stack {
	s.SetProps(style.Props{"gap": token})
	return s
}

// WithAlign sets the cross-axis alignment ("center", "end", ...).
func (s *Stack) WithAlign(align string) *Stack {
	s.SetProps(style.Props{"alignItems": align})
	return s
}

// WithProps merges style props onto the stack.
func (s *Stack) WithProps(props style.Props) *Stack {
	s.SetProps(props)
	return s
}
