package text

import "testing"

func TestBreaksLine(t *testing.T) {
	text := []rune("ab cd")
	flags := Breaks(text)
	if len(flags) != len(text) {
		t.Fatalf("len(Breaks) = %d, want %d", len(flags), len(text))
	}

	want := []bool{false, false, true, false, true}
	for i, w := range want {
		if got := flags[i].CanBreakLine(); got != w {
			t.Errorf("CanBreakLine after %d (%q) = %v, want %v", i, text[i], got, w)
		}
	}
	if flags[4].MustBreakLine() {
		t.Error("end of text reported as a mandatory break")
	}
}

func TestBreaksMandatory(t *testing.T) {
	flags := Breaks([]rune("a\rb\r"))
	if !flags[1].MustBreakLine() {
		t.Error("break after CR is not mandatory")
	}
	if !flags[3].MustBreakLine() {
		t.Error("trailing CR is not a mandatory break")
	}
	if flags[0].CanBreakLine() {
		t.Error("break allowed inside \"a\\r\"")
	}
}

func TestBreaksWord(t *testing.T) {
	text := []rune("hello world")
	flags := Breaks(text)
	for i, f := range flags {
		want := i == 4 || i == 5 || i == 10
		if got := f&BreakWord != 0; got != want {
			t.Errorf("word boundary after %d = %v, want %v", i, got, want)
		}
	}
}

func TestBreaksGrapheme(t *testing.T) {
	// e + combining acute is one cluster.
	text := []rune("e\u0301x")
	flags := Breaks(text)
	if flags[0]&BreakGrapheme != 0 {
		t.Error("grapheme boundary inside e+U+0301")
	}
	if flags[1]&BreakGrapheme == 0 || flags[2]&BreakGrapheme == 0 {
		t.Errorf("missing grapheme boundaries: %v", flags)
	}
	if got := NextCluster(text, 0); got != 2 {
		t.Errorf("NextCluster(0) = %d, want 2", got)
	}
	if got := NextCluster(text, 2); got != 3 {
		t.Errorf("NextCluster(2) = %d, want 3", got)
	}
	if got := NextCluster(text, 3); got != 3 {
		t.Errorf("NextCluster(3) = %d, want 3", got)
	}
}

func TestIsWhite(t *testing.T) {
	for _, r := range []rune{' ', '\t', '\n', 0xA0, 0x2003, 0x3000, 0x2029} {
		if !IsWhite(r) {
			t.Errorf("IsWhite(%U) = false, want true", r)
		}
	}
	for _, r := range []rune{'a', '-', 0x200B, '.'} {
		if IsWhite(r) {
			t.Errorf("IsWhite(%U) = true, want false", r)
		}
	}
}
