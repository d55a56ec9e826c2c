package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	cacheLimit int
	parserName string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		cacheLimit: 512,
		parserName: defaultParserName,
	}
}

// WithCacheLimit sets the maximum number of cached glyph advances.
// A value of 0 disables the cache limit.
func WithCacheLimit(n int) SourceOption {
	return func(c *sourceConfig) {
		c.cacheLimit = n
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	direction Direction
	language  string
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		direction: DirectionLTR,
		language:  "en",
	}
}

// WithDirection sets the default text direction for the face.
func WithDirection(d Direction) FaceOption {
	return func(c *faceConfig) {
		c.direction = d
	}
}

// WithLanguage sets the language tag used when shaping with the face.
// An empty tag keeps the default ("en").
func WithLanguage(lang string) FaceOption {
	return func(c *faceConfig) {
		if lang != "" {
			c.language = lang
		}
	}
}

// FontSetOption configures a FontSet.
type FontSetOption func(*fontSetConfig)

type fontSetConfig struct {
	faceCacheLimit int
	defaultFamily  string
}

func defaultFontSetConfig() fontSetConfig {
	return fontSetConfig{
		faceCacheLimit: 64,
	}
}

// WithFaceCacheLimit sets how many faces a FontSet keeps cached.
// A value of 0 disables the limit.
func WithFaceCacheLimit(n int) FontSetOption {
	return func(c *fontSetConfig) {
		c.faceCacheLimit = n
	}
}

// WithDefaultFamily sets the family used when no requested family matches.
// By default the family of the first added source is used.
func WithDefaultFamily(family string) FontSetOption {
	return func(c *fontSetConfig) {
		c.defaultFamily = family
	}
}
