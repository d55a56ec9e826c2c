package style

import (
	"errors"
	"testing"

	"github.com/gogpu/textblock/text"
)

// countingLoader resolves every request from the default font set and
// counts calls.
type countingLoader struct {
	calls int
	err   error
}

func (l *countingLoader) LoadFace(desc text.FontDesc, size float64) (text.Face, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	return text.DefaultFontSet().LoadFace(desc, size)
}

func TestStackPushPop(t *testing.T) {
	p := NewParser()
	defer p.Close()
	s := NewStack(p, nil, 1)

	base := s.Push(nil)
	if base.Refs() != 1 || base.TabStops != 32 || base.VAlign != -1 || !base.HAlignAuto {
		t.Fatalf("default format = %+v", *base)
	}
	s.Apply("font_size=20 wrap=word")

	child := s.Push(base)
	if child == base {
		t.Fatal("Push(parent) returned the parent")
	}
	if child.FontSize != 20 || child.Wrap != WrapWord {
		t.Errorf("child did not inherit: size %d wrap %v", child.FontSize, child.Wrap)
	}
	s.Apply("font_size=8")
	if base.FontSize != 20 {
		t.Errorf("child change leaked into parent: %d", base.FontSize)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}

	child.Ref() // held by an item
	if top := s.Pop(); top != base {
		t.Error("Pop() did not return the parent")
	}
	if child.Refs() != 1 {
		t.Errorf("child refs after Pop = %d, want 1", child.Refs())
	}
	s.Clear()
	if s.Len() != 0 || base.Refs() != 0 {
		t.Errorf("after Clear: Len %d, base refs %d", s.Len(), base.Refs())
	}
	if s.Pop() != nil {
		t.Error("Pop() on empty stack returned a format")
	}
}

func TestStackFinalize(t *testing.T) {
	loader := &countingLoader{}
	s := NewStack(NewParser(), loader, 2)

	f := s.Push(nil)
	s.Apply("font=Sans font_size=10")
	if err := s.Finalize(f); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if f.Face() == nil || f.Face().Size() != 20 {
		t.Fatalf("face = %v, want size 20 (scaled)", f.Face())
	}
	if loader.calls != 1 {
		t.Errorf("loader calls = %d, want 1", loader.calls)
	}

	// Duplicates share the face until the font changes.
	d := s.Push(f)
	if err := s.Finalize(d); err != nil {
		t.Fatal(err)
	}
	if loader.calls != 1 || d.Face() != f.Face() {
		t.Errorf("unchanged dup reloaded its font (calls %d)", loader.calls)
	}
	s.Apply("font_weight=bold")
	if err := s.Finalize(d); err != nil {
		t.Fatal(err)
	}
	if loader.calls != 2 {
		t.Errorf("loader calls = %d, want 2 after a font change", loader.calls)
	}
	if d.Face().Source().Subfamily() != "Bold" {
		t.Errorf("bold face subfamily = %q", d.Face().Source().Subfamily())
	}

	loader.err = errors.New("boom")
	s.Apply("font_size=30")
	old := d.Face()
	if err := s.Finalize(d); err == nil {
		t.Error("Finalize did not report the loader error")
	}
	if d.Face() != old {
		t.Error("failed Finalize replaced the face")
	}

	if err := NewStack(nil, nil, 1).Finalize(NewFormat()); !errors.Is(err, ErrNoFontLoader) {
		t.Errorf("Finalize without loader error = %v, want ErrNoFontLoader", err)
	}
}
