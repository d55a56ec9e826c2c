package recording

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/textblock/text"
)

// Painter receives replayed commands. It has the method set of
// textblock.Painter.
type Painter interface {
	DrawRun(run *text.ShapedRun, x, y float64, c color.NRGBA)
	FillRect(r text.Rect, c color.NRGBA)
}

// Recorder captures drawing operations as commands. It implements
// textblock.Painter. Use FinishRecording to obtain an immutable Recording
// that can be replayed to another Painter.
//
// Example:
//
//	rec := recording.NewRecorder()
//	tb.Render(rec, textblock.RenderOptions{})
//	r := rec.FinishRecording()
//	r.Playback(screen)
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands  []Command
	resources *ResourcePool
	bounds    text.Rect
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		commands:  make([]Command, 0, 256),
		resources: NewResourcePool(),
	}
}

// DrawRun records a run draw.
func (r *Recorder) DrawRun(run *text.ShapedRun, x, y float64, c color.NRGBA) {
	if run == nil {
		return
	}
	ref := r.resources.AddRun(run)
	r.commands = append(r.commands, DrawRunCommand{Run: ref, X: x, Y: y, Color: c})
	b := run.Bounds()
	b.X += x
	b.Y += y
	r.grow(b)
}

// FillRect records a rectangle fill.
func (r *Recorder) FillRect(rect text.Rect, c color.NRGBA) {
	r.commands = append(r.commands, FillRectCommand{Rect: rect, Color: c})
	r.grow(rect)
}

func (r *Recorder) grow(b text.Rect) {
	if b.Empty() {
		return
	}
	if r.bounds.Empty() {
		r.bounds = b
		return
	}
	x0, y0 := min(r.bounds.X, b.X), min(r.bounds.Y, b.Y)
	x1, y1 := max(r.bounds.MaxX(), b.MaxX()), max(r.bounds.MaxY(), b.MaxY())
	r.bounds = text.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Reset discards the recorded commands so the Recorder can be reused.
func (r *Recorder) Reset() {
	clear(r.commands)
	r.commands = r.commands[:0]
	r.resources = NewResourcePool()
	r.bounds = text.Rect{}
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. After calling FinishRecording, the Recorder should not be
// used again except through Reset.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		commands:  r.commands,
		resources: r.resources,
		bounds:    r.bounds,
	}
}

// Recording is an immutable container for recorded drawing commands.
type Recording struct {
	commands  []Command
	resources *ResourcePool
	bounds    text.Rect
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Bounds returns the union of every drawn run box and rectangle.
func (r *Recording) Bounds() text.Rect {
	return r.bounds
}

// Count returns the number of commands of type t.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording to p.
func (r *Recording) Playback(p Painter) {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case DrawRunCommand:
			if run := r.resources.GetRun(c.Run); run != nil {
				p.DrawRun(run, c.X, c.Y, c.Color)
			}
		case FillRectCommand:
			p.FillRect(c.Rect, c.Color)
		}
	}
}

// String returns one line per command, for debugging and golden tests.
func (r *Recording) String() string {
	var sb strings.Builder
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case DrawRunCommand:
			run := r.resources.GetRun(c.Run)
			n := 0
			if run != nil {
				n = run.Len
			}
			fmt.Fprintf(&sb, "DrawRun runes=%d at (%g,%g) color=%v\n", n, c.X, c.Y, c.Color)
		case FillRectCommand:
			fmt.Fprintf(&sb, "FillRect %g,%g %gx%g color=%v\n", c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H, c.Color)
		}
	}
	return sb.String()
}
