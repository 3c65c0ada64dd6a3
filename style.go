package verso

// ElementStyle is the per-type layout contract: how an ElementType is
// measured, spaced, and split.
type ElementStyle struct {
	// MarginLeft and MarginRight are character-grid margins, in inches,
	// offset into the printable area. The core never reads these; they
	// are carried for external renderers only.
	MarginLeft  float64
	MarginRight float64

	// MaxCharsPerLine is the monospace wrap width for this element type.
	MaxCharsPerLine int

	// SpaceBefore and SpaceAfter are blank lines inserted above/below the
	// element. The Page Breaker drops SpaceBefore at the top of a page;
	// SpaceAfter is always counted in the element's total lines.
	SpaceBefore int
	SpaceAfter  int

	// LineSpacing is a multiplier (>= 1.0) applied to content lines,
	// ceil-rounded.
	LineSpacing float64

	// CanSplit indicates whether this element type may be split across a
	// page boundary at all.
	CanSplit bool

	// MinLinesBeforeSplit and MinLinesAfterSplit are the minimum lines
	// that must precede/follow a split within this element.
	MinLinesBeforeSplit int
	MinLinesAfterSplit  int

	// KeepWithNext and KeepWithNextLines implement the keep-with-next
	// look-ahead constraint: when set, KeepWithNextLines of the following
	// elements must fit on the same page as this one.
	KeepWithNext      bool
	KeepWithNextLines int

	// ForceUppercase is an informational hint for renderers; the core
	// never uppercases element text itself.
	ForceUppercase bool
}

// defaultElementStyle is the global, process-wide fallback used when an
// element type is missing from a PageConfig's style map. Callers may treat
// this as a static immutable value.
var defaultElementStyle = ElementStyle{
	MaxCharsPerLine:     60,
	SpaceBefore:         1,
	SpaceAfter:          0,
	LineSpacing:         1.0,
	CanSplit:            true,
	MinLinesBeforeSplit: 2,
	MinLinesAfterSplit:  2,
}

// DefaultElementStyle returns the package-wide default style applied when
// a PageConfig has no explicit entry for an ElementType.
func DefaultElementStyle() ElementStyle {
	return defaultElementStyle
}

// defaultStyleFor returns the feature-film default ElementStyle for the
// given element type, overriding the global default's fields as needed.
func defaultStyleFor(elementType ElementType) ElementStyle {
	switch elementType {
	case SceneHeading:
		s := defaultElementStyle
		s.SpaceBefore = 2
		s.KeepWithNext = true
		s.KeepWithNextLines = 2
		s.ForceUppercase = true
		s.CanSplit = false
		return s

	case Action:
		s := defaultElementStyle
		s.SpaceBefore = 1
		s.CanSplit = true
		s.MinLinesBeforeSplit = 2
		s.MinLinesAfterSplit = 2
		return s

	case Character:
		s := defaultElementStyle
		s.MarginLeft = 2.2
		s.MaxCharsPerLine = 38
		s.SpaceBefore = 1
		s.ForceUppercase = true
		s.KeepWithNext = true
		s.KeepWithNextLines = 2
		s.CanSplit = false
		return s

	case Dialogue:
		s := defaultElementStyle
		s.MarginLeft = 1.0
		s.MarginRight = 1.5
		s.MaxCharsPerLine = 35
		s.SpaceBefore = 0
		s.CanSplit = true
		s.MinLinesBeforeSplit = 2
		s.MinLinesAfterSplit = 2
		return s

	case Parenthetical:
		s := defaultElementStyle
		s.MarginLeft = 1.6
		s.MarginRight = 2.3
		s.MaxCharsPerLine = 25
		s.SpaceBefore = 0
		s.CanSplit = false
		s.KeepWithNext = true
		s.KeepWithNextLines = 1
		return s

	case Transition:
		s := defaultElementStyle
		s.MarginLeft = 4.0
		s.MaxCharsPerLine = 20
		s.SpaceBefore = 2
		s.SpaceAfter = 1
		s.ForceUppercase = true
		s.CanSplit = false
		return s

	case ActBreak:
		s := defaultElementStyle
		s.SpaceBefore = 4
		s.SpaceAfter = 4
		s.ForceUppercase = true
		s.CanSplit = false
		return s

	case PageBreakElement:
		s := defaultElementStyle
		s.SpaceBefore = 0
		s.SpaceAfter = 0
		s.CanSplit = false
		return s

	default:
		return defaultElementStyle
	}
}
