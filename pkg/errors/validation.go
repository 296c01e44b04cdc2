package errors

// ValidateHexColor validates a chart color specification.
// The Chart API accepts RRGGBB and RRGGBBAA hex strings without a leading '#'.
//
// An empty color is valid: it means "let the server pick".
func ValidateHexColor(color string) error {
	if color == "" {
		return nil
	}

	if len(color) != 6 && len(color) != 8 {
		return New(ErrCodeInvalidColor, "color %q must be 6 or 8 hex digits", color)
	}

	for _, r := range color {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return New(ErrCodeInvalidColor, "color %q contains non-hex character %q", color, r)
		}
	}

	return nil
}

// ValidateSize validates chart pixel dimensions. The Chart API rejects
// non-positive sizes, so catch them before building a URL.
func ValidateSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidSize, "size %dx%d: dimensions must be positive", width, height)
	}
	return nil
}
