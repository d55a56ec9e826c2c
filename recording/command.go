package recording

import (
	"image/color"

	"github.com/gogpu/textblock/text"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdDrawRun  CommandType = iota // Draw a shaped run
	CmdFillRect                    // Fill a rectangle
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdDrawRun:  "DrawRun",
	CmdFillRect: "FillRect",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// RunRef is a reference to a shaped run in the resource pool.
// The zero value is a valid reference to the first run (if any).
type RunRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference is not InvalidRef.
func (r RunRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// DrawRunCommand draws a pooled run with its pen origin at (X, Y).
type DrawRunCommand struct {
	Run   RunRef
	X, Y  float64
	Color color.NRGBA
}

// Type implements Command.
func (DrawRunCommand) Type() CommandType { return CmdDrawRun }

// FillRectCommand fills a rectangle.
type FillRectCommand struct {
	Rect  text.Rect
	Color color.NRGBA
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }
