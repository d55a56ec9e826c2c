package style

// key identifies a recognized format key.
type key int

const (
	keyUnknown key = iota
	keyFont
	keyFontFallbacks
	keyFontSize
	keyFontSource
	keyFontWeight
	keyFontStyle
	keyFontWidth
	keyLang
	keyColor
	keyUnderlineColor
	keyUnderline2Color
	keyUnderlineDashColor
	keyOutlineColor
	keyShadowColor
	keyGlowColor
	keyGlow2Color
	keyBackingColor
	keyStrikethroughColor
	keyAlign
	keyVAlign
	keyWrap
	keyLeftMargin
	keyRightMargin
	keyUnderline
	keyStrikethrough
	keyBacking
	keyStyle
	keyTabStops
	keyLineSize
	keyLineRelSize
	keyLineGap
	keyLineRelGap
	keyItem
	keyLineFill
	keyEllipsis
	keyUnderlineDashWidth
	keyUnderlineDashGap
	keyCount
)

var keyNames = [keyCount]string{
	keyFont:               "font",
	keyFontFallbacks:      "font_fallbacks",
	keyFontSize:           "font_size",
	keyFontSource:         "font_source",
	keyFontWeight:         "font_weight",
	keyFontStyle:          "font_style",
	keyFontWidth:          "font_width",
	keyLang:               "lang",
	keyColor:              "color",
	keyUnderlineColor:     "underline_color",
	keyUnderline2Color:    "underline2_color",
	keyUnderlineDashColor: "underline_dash_color",
	keyOutlineColor:       "outline_color",
	keyShadowColor:        "shadow_color",
	keyGlowColor:          "glow_color",
	keyGlow2Color:         "glow2_color",
	keyBackingColor:       "backing_color",
	keyStrikethroughColor: "strikethrough_color",
	keyAlign:              "align",
	keyVAlign:             "valign",
	keyWrap:               "wrap",
	keyLeftMargin:         "left_margin",
	keyRightMargin:        "right_margin",
	keyUnderline:          "underline",
	keyStrikethrough:      "strikethrough",
	keyBacking:            "backing",
	keyStyle:              "style",
	keyTabStops:           "tabstops",
	keyLineSize:           "linesize",
	keyLineRelSize:        "linerelsize",
	keyLineGap:            "linegap",
	keyLineRelGap:         "linerelgap",
	keyItem:               "item",
	keyLineFill:           "linefill",
	keyEllipsis:           "ellipsis",
	keyUnderlineDashWidth: "underline_dash_width",
	keyUnderlineDashGap:   "underline_dash_gap",
}

// String returns the markup spelling of the key.
func (k key) String() string {
	if k > keyUnknown && k < keyCount {
		return keyNames[k]
	}
	return unknownStr
}

// isFontKey reports whether the key changes the font descriptor.
func (k key) isFontKey() bool {
	switch k {
	case keyFont, keyFontFallbacks, keyFontWeight, keyFontStyle, keyFontWidth, keyLang, keyFontSource:
		return true
	}
	return false
}
