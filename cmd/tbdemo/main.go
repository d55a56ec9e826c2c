// Command tbdemo lays out styled text with textblock and saves it as a PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/gogpu/textblock"
	"github.com/gogpu/textblock/recording"
	"github.com/gogpu/textblock/style"
	"github.com/gogpu/textblock/text"
)

const demoText = "Textblock lays out paragraphs of styled text. " +
	"Words wrap at the object width,\ttabs align to stops,\nand newlines break lines.\u2029" +
	"Each paragraph separator starts a new paragraph with its own lines."

const demoStyle = "DEFAULT='font=Sans font_size=16 color=#202020 wrap=word " +
	"style=soft_shadow shadow_color=#00000040 linegap=4'"

func main() {
	var (
		width   = flag.Float64("width", 360, "layout width, 0 for unbounded")
		margin  = flag.Int("margin", 16, "margin around the text in pixels")
		output  = flag.String("output", "textblock.png", "output file")
		content = flag.String("text", demoText, "text to lay out; \\n breaks a line, \\p starts a paragraph")
		styles  = flag.String("style", demoStyle, "style string")
		scale   = flag.Float64("scale", 1, "scale factor")
		dump    = flag.Bool("dump", false, "print the recorded draw commands")
		verbose = flag.Bool("v", false, "log layout at debug level")
	)
	flag.Parse()

	if *verbose {
		textblock.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	tb := textblock.New(textblock.WithScale(*scale))
	defer tb.Close()
	tb.SetStyle(style.NewStyle(*styles))
	if *width > 0 {
		tb.SetSize(*width, -1)
	}
	if err := tb.SetText(unescape(*content)); err != nil {
		log.Fatalf("Failed to set text: %v", err)
	}
	if err := tb.Layout(); err != nil {
		log.Fatalf("Failed to lay out: %v", err)
	}

	rec := recording.NewRecorder()
	if err := tb.Render(rec, textblock.RenderOptions{X: float64(*margin), Y: float64(*margin)}); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	r := rec.FinishRecording()
	if *dump {
		fmt.Print(r.String())
	}

	w, h := tb.FormattedSize()
	if *width > 0 {
		w = max(w, *width)
	}
	img := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(w))+2**margin, int(math.Ceil(h))+2**margin))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	p := &imagePainter{dst: img, raster: text.NewRunRasterizer()}
	r.Playback(p)
	if p.err != nil {
		log.Printf("Some glyphs were skipped: %v", p.err)
	}

	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Text saved to %s (%dx%d, %d lines)\n", *output, img.Bounds().Dx(), img.Bounds().Dy(), tb.LineCount())
}

// imagePainter draws recorded commands into an RGBA image.
type imagePainter struct {
	dst    *image.RGBA
	raster *text.RunRasterizer
	err    error
}

func (p *imagePainter) DrawRun(run *text.ShapedRun, x, y float64, c color.NRGBA) {
	if err := p.raster.DrawRun(p.dst, run, x, y, c); err != nil && p.err == nil {
		p.err = err
	}
}

func (p *imagePainter) FillRect(r text.Rect, c color.NRGBA) {
	rect := image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.MaxX())), int(math.Ceil(r.MaxY())),
	)
	draw.Draw(p.dst, rect, image.NewUniform(c), image.Point{}, draw.Over)
}

// unescape turns the `\n` and `\p` sequences of a command line argument
// into a line break and a paragraph separator.
func unescape(s string) string {
	return strings.NewReplacer(`\n`, "\n", `\p`, "\u2029").Replace(s)
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
