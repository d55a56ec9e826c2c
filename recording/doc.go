// Package recording captures the drawing calls of a textblock render as
// commands that can be inspected or replayed.
//
// A Recorder implements textblock.Painter. Render into it, then call
// FinishRecording to obtain an immutable Recording:
//
//	rec := recording.NewRecorder()
//	if err := tb.Render(rec, textblock.RenderOptions{}); err != nil {
//		return err
//	}
//	r := rec.FinishRecording()
//	r.Playback(screen)
//
// Runs are cloned into a ResourcePool when recorded and commands refer to
// them by RunRef, so a Recording stays valid after the textblock is edited
// or closed.
//
// Recordings are useful for testing layout output without a rasterizer
// and for drawing the same text several times.
package recording
