package style

import "github.com/gogpu/textblock/text"

// FontLoader resolves a font descriptor at a pixel size.
// *text.FontSet implements FontLoader.
type FontLoader interface {
	LoadFace(desc text.FontDesc, size float64) (text.Face, error)
}

// Stack is the layout-time stack of Formats, one per markup scope.
type Stack struct {
	parser  *Parser
	loader  FontLoader
	scale   float64
	formats []*Format
}

// NewStack returns an empty stack. scale multiplies every font size.
func NewStack(parser *Parser, loader FontLoader, scale float64) *Stack {
	if scale <= 0 {
		scale = 1
	}
	return &Stack{parser: parser, loader: loader, scale: scale}
}

// Push pushes a duplicate of parent, or a default Format when parent is
// nil, and returns it.
func (s *Stack) Push(parent *Format) *Format {
	var f *Format
	if parent != nil {
		f = parent.Dup()
	} else {
		f = NewFormat()
	}
	s.formats = append(s.formats, f)
	return f
}

// Pop releases the stack's reference to the top Format and returns the new
// top, or nil when the stack is empty.
func (s *Stack) Pop() *Format {
	if len(s.formats) == 0 {
		return nil
	}
	top := s.formats[len(s.formats)-1]
	s.formats[len(s.formats)-1] = nil
	s.formats = s.formats[:len(s.formats)-1]
	top.Unref()
	return s.Top()
}

// Top returns the innermost Format, or nil.
func (s *Stack) Top() *Format {
	if len(s.formats) == 0 {
		return nil
	}
	return s.formats[len(s.formats)-1]
}

// Len returns the stack depth.
func (s *Stack) Len() int {
	return len(s.formats)
}

// Clear pops every Format.
func (s *Stack) Clear() {
	for len(s.formats) > 0 {
		s.Pop()
	}
}

// Apply applies markup to the top Format.
func (s *Stack) Apply(markup string) {
	if top := s.Top(); top != nil && s.parser != nil {
		s.parser.Apply(top, markup)
	}
}

// Finalize resolves the font of f. The face is reloaded only when the
// descriptor or the scaled size differs from the loaded one. On error the
// previous face is kept.
func (s *Stack) Finalize(f *Format) error {
	size := float64(f.FontSize) * s.scale
	if f.face != nil && f.loadedSize == size && f.loadedDesc.Equal(f.Font) {
		return nil
	}
	if s.loader == nil {
		return ErrNoFontLoader
	}
	face, err := s.loader.LoadFace(f.Font, size)
	if err != nil {
		return err
	}
	f.face = face
	f.loadedDesc = f.Font
	f.loadedSize = size
	return nil
}
