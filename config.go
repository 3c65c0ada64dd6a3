package verso

// PaperSize identifies the physical page dimensions, used only by external
// renderers; the core reasons in lines, never in points.
type PaperSize int

const (
	USLetter PaperSize = iota
	A4
)

// WidthPt and HeightPt return the paper's dimensions in points
// (1 inch = 72 points).
func (p PaperSize) WidthPt() float64 {
	switch p {
	case A4:
		return 595.28
	default:
		return 612.0
	}
}

func (p PaperSize) HeightPt() float64 {
	switch p {
	case A4:
		return 841.89
	default:
		return 792.0
	}
}

// MarginConfig holds page margins in inches.
type MarginConfig struct {
	Top, Bottom, Left, Right float64
}

func (m MarginConfig) TopPt() float64    { return m.Top * 72.0 }
func (m MarginConfig) BottomPt() float64 { return m.Bottom * 72.0 }
func (m MarginConfig) LeftPt() float64   { return m.Left * 72.0 }
func (m MarginConfig) RightPt() float64  { return m.Right * 72.0 }

func defaultMarginConfig() MarginConfig {
	return MarginConfig{Top: 1.0, Bottom: 1.0, Left: 1.5, Right: 1.0}
}

// ContinuationStyle controls how dialogue MORE/CONT'D markers are rendered.
type ContinuationStyle struct {
	MoreMarker string
	ContdMarker string
	Enabled    bool
}

func defaultContinuationStyle() ContinuationStyle {
	return ContinuationStyle{
		MoreMarker:  "(MORE)",
		ContdMarker: "(CONT'D)",
		Enabled:     true,
	}
}

// OrphanControl holds orphan/widow minima. The Page Breaker reads only
// DialogueMinBeforeSplit and DialogueMinAfterSplit (dialogue split
// feasibility); SceneHeadingMinFollowing and CharacterMinDialogueLines are
// carried but not consulted, and keep-with-next look-ahead uses each
// style's KeepWithNextLines instead.
type OrphanControl struct {
	SceneHeadingMinFollowing int
	CharacterMinDialogueLines int
	DialogueMinBeforeSplit    int
	DialogueMinAfterSplit     int
}

func defaultOrphanControl() OrphanControl {
	return OrphanControl{
		SceneHeadingMinFollowing:  2,
		CharacterMinDialogueLines: 2,
		DialogueMinBeforeSplit:    2,
		DialogueMinAfterSplit:     2,
	}
}

// PageConfig is the complete page-format configuration: paper size, lines
// per page, monospace metrics (for external renderers only), margins, a
// per-type style map, continuation marker formatting, and orphan/widow
// minima.
type PageConfig struct {
	PaperSize PaperSize

	// LinesPerPage is the integer line budget per page (typically 55).
	LinesPerPage int

	// CharWidthPt and LineHeightPt describe the monospace grid in points
	// for external renderers; the core never consults them.
	CharWidthPt  float64
	LineHeightPt float64

	Margins MarginConfig

	// ElementStyles maps an ElementType to its ElementStyle. Types absent
	// from the map fall back to DefaultElementStyle.
	ElementStyles map[ElementType]ElementStyle

	ContinuationStyle ContinuationStyle
	OrphanControl     OrphanControl
}

// FeatureFilm returns the canonical feature-film PageConfig: the reference
// configuration every conformance test accepts.
func FeatureFilm() PageConfig {
	styles := map[ElementType]ElementStyle{
		SceneHeading:     defaultStyleFor(SceneHeading),
		Action:           defaultStyleFor(Action),
		Character:        defaultStyleFor(Character),
		Dialogue:         defaultStyleFor(Dialogue),
		Parenthetical:    defaultStyleFor(Parenthetical),
		Transition:       defaultStyleFor(Transition),
		ActBreak:         defaultStyleFor(ActBreak),
		PageBreakElement: defaultStyleFor(PageBreakElement),
		Shot:             defaultStyleFor(Shot),
		BlankLine:        defaultStyleFor(BlankLine),
	}

	return PageConfig{
		PaperSize:         USLetter,
		LinesPerPage:      55,
		CharWidthPt:       7.2,
		LineHeightPt:      12.0,
		Margins:           defaultMarginConfig(),
		ElementStyles:     styles,
		ContinuationStyle: defaultContinuationStyle(),
		OrphanControl:     defaultOrphanControl(),
	}
}

// StyleFor returns the style registered for elementType, or
// DefaultElementStyle when the config's style map has no entry for it.
func (c PageConfig) StyleFor(elementType ElementType) ElementStyle {
	if style, ok := c.ElementStyles[elementType]; ok {
		return style
	}
	return defaultElementStyle
}

// PrintableWidthPt and PrintableHeightPt return the content area in points
// after subtracting margins, for external renderers.
func (c PageConfig) PrintableWidthPt() float64 {
	return c.PaperSize.WidthPt() - c.Margins.LeftPt() - c.Margins.RightPt()
}

func (c PageConfig) PrintableHeightPt() float64 {
	return c.PaperSize.HeightPt() - c.Margins.TopPt() - c.Margins.BottomPt()
}
