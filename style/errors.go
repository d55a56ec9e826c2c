package style

import "errors"

var (
	// ErrUnterminatedTag is returned by Style.Set when a tag value is
	// missing its closing quote. Tags before it are kept.
	ErrUnterminatedTag = errors.New("style: unterminated tag value")

	// ErrNoFontLoader is returned by Stack.Finalize when no loader is set.
	ErrNoFontLoader = errors.New("style: no font loader")
)
