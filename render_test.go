package textblock

import (
	"testing"

	"github.com/gogpu/textblock/recording"
	"github.com/gogpu/textblock/text"
)

// record renders tb into a recording.
func record(t *testing.T, tb *Textblock, opts RenderOptions) *recording.Recording {
	t.Helper()
	rec := recording.NewRecorder()
	if err := tb.Render(rec, opts); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return rec.FinishRecording()
}

func TestRenderPlain(t *testing.T) {
	tb := newTestBlock(t, "DEFAULT='font=Monospace font_size=10 color=#ff0000'")
	setText(t, tb, "ab\u2029cd")

	r := record(t, tb, RenderOptions{X: 10, Y: 20})
	if got := r.Count(recording.CmdDrawRun); got != 2 {
		t.Errorf("DrawRun commands = %d, want 2", got)
	}
	if got := r.Count(recording.CmdFillRect); got != 0 {
		t.Errorf("FillRect commands = %d, want 0", got)
	}

	line := lineRect(t, tb, 0)
	cmd, ok := r.Commands()[0].(recording.DrawRunCommand)
	if !ok {
		t.Fatalf("first command = %T", r.Commands()[0])
	}
	if !near(cmd.X, 10) || cmd.Y <= 20+line.Y || cmd.Y >= 20+line.MaxY() {
		t.Errorf("first run at (%v, %v), want x 10 with a baseline inside line %+v", cmd.X, cmd.Y, line)
	}
	if cmd.Color.R != 0xff || cmd.Color.G != 0 || cmd.Color.A != 0xff {
		t.Errorf("run color = %v, want opaque red", cmd.Color)
	}
}

func TestRenderDecorations(t *testing.T) {
	tests := []struct {
		name  string
		style string
		runs  int
		rects int
	}{
		{"backing", "backing=on", 1, 1},
		{"underline", "underline=on", 1, 1},
		{"double underline", "underline=double", 1, 2},
		{"dashed underline", "underline=dashed underline_dash_width=4 underline_dash_gap=2", 1, 2},
		{"strikethrough", "strikethrough=on", 1, 1},
		{"shadow", "style=shadow", 2, 0},
		{"outline", "style=outline", 5, 0},
		{"soft outline", "style=soft_outline", 1 + 21, 0},
		{"glow", "style=glow", 1 + 21 + 4, 0},
		{"soft shadow", "style=soft_shadow", 1 + 21, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := newTestBlock(t, "DEFAULT='font=Monospace font_size=10 "+tt.style+"'")
			// Two glyphs: the dashed underline needs two dashes of 4+2.
			setText(t, tb, "ab")
			r := record(t, tb, RenderOptions{})
			if got := r.Count(recording.CmdDrawRun); got != tt.runs {
				t.Errorf("DrawRun commands = %d, want %d", got, tt.runs)
			}
			if got := r.Count(recording.CmdFillRect); got != tt.rects {
				t.Errorf("FillRect commands = %d, want %d", got, tt.rects)
			}
		})
	}
}

func TestRenderLayerOrder(t *testing.T) {
	tb := newTestBlock(t, "DEFAULT='font=Monospace font_size=10 style=shadow backing=on underline=on'")
	setText(t, tb, "ab\u2029cd")
	r := record(t, tb, RenderOptions{})

	var order []recording.CommandType
	for _, cmd := range r.Commands() {
		order = append(order, cmd.Type())
	}
	want := []recording.CommandType{
		recording.CmdFillRect, recording.CmdFillRect, // backings
		recording.CmdDrawRun, recording.CmdDrawRun, // shadows
		recording.CmdDrawRun, recording.CmdDrawRun, // text
		recording.CmdFillRect, recording.CmdFillRect, // underlines
	}
	if len(order) != len(want) {
		t.Fatalf("commands = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("commands = %v, want %v", order, want)
			break
		}
	}
}

func TestRenderClip(t *testing.T) {
	tb := newTestBlock(t, monoStyle)
	setText(t, tb, "ab\u2029cd\u2029ef")
	second := lineRect(t, tb, 1)

	r := record(t, tb, RenderOptions{Clip: &text.Rect{X: 0, Y: second.Y + 1, W: 100, H: 1}})
	if got := r.Count(recording.CmdDrawRun); got != 1 {
		t.Errorf("DrawRun commands with a clip = %d, want 1", got)
	}
}

func TestRenderEllipsis(t *testing.T) {
	tb := newTestBlock(t, "DEFAULT='font=Monospace font_size=10 ellipsis=1.0'")
	setText(t, tb, "abcdefghij")
	tb.SetSize(30, -1)

	r := record(t, tb, RenderOptions{})
	var lens []int
	for _, cmd := range r.Commands() {
		if dr, ok := cmd.(recording.DrawRunCommand); ok {
			lens = append(lens, r.Resources().GetRun(dr.Run).Len)
		}
	}
	// The kept prefix and the ellipsis; hidden text is not drawn.
	if len(lens) != 2 || lens[0] != 4 || lens[1] != 1 {
		t.Errorf("drawn run lengths = %v, want [4 1]", lens)
	}
}

func TestRenderSkipsDeletedSpace(t *testing.T) {
	tb := newTestBlock(t, "DEFAULT='font=Monospace font_size=10 wrap=word backing=on'")
	setText(t, tb, "hello world")
	tb.SetSize(40, -1)

	r := record(t, tb, RenderOptions{})
	if got := r.Count(recording.CmdDrawRun); got != 2 {
		t.Errorf("DrawRun commands = %d, want 2", got)
	}
	if got := r.Count(recording.CmdFillRect); got != 2 {
		t.Errorf("backing rects = %d, want 2", got)
	}
}

func TestRenderPlayback(t *testing.T) {
	tb := newTestBlock(t, monoStyle)
	setText(t, tb, "abc")
	r := record(t, tb, RenderOptions{})

	// A recording survives the textblock.
	tb.Close()
	rec := recording.NewRecorder()
	r.Playback(rec)
	if got := rec.FinishRecording().String(); got != r.String() {
		t.Errorf("playback = %q, want %q", got, r.String())
	}
}
