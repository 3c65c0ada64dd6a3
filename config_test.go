package verso

import "testing"

func TestFeatureFilmConfig(t *testing.T) {
	config := FeatureFilm()

	if config.LinesPerPage != 55 {
		t.Errorf("LinesPerPage = %d, want 55", config.LinesPerPage)
	}
	if config.PaperSize != USLetter {
		t.Errorf("PaperSize = %v, want USLetter", config.PaperSize)
	}
	if _, ok := config.ElementStyles[SceneHeading]; !ok {
		t.Error("ElementStyles missing SceneHeading")
	}
}

func TestUSLetterDimensions(t *testing.T) {
	if got := USLetter.WidthPt(); got != 612.0 {
		t.Errorf("WidthPt() = %v, want 612.0", got)
	}
	if got := USLetter.HeightPt(); got != 792.0 {
		t.Errorf("HeightPt() = %v, want 792.0", got)
	}
}

func TestPrintableArea(t *testing.T) {
	config := FeatureFilm()

	// 8.5" - 1.5" - 1" = 6" = 432pt
	if got := config.PrintableWidthPt(); abs(got-432.0) > 0.01 {
		t.Errorf("PrintableWidthPt() = %v, want ~432.0", got)
	}
}

func TestStyleForFallsBackToDefault(t *testing.T) {
	config := PageConfig{ElementStyles: map[ElementType]ElementStyle{}}

	style := config.StyleFor(Dialogue)
	if style.MaxCharsPerLine != defaultElementStyle.MaxCharsPerLine {
		t.Errorf("StyleFor fallback MaxCharsPerLine = %d, want %d", style.MaxCharsPerLine, defaultElementStyle.MaxCharsPerLine)
	}
}

func TestDialogueStyleDefaults(t *testing.T) {
	config := FeatureFilm()
	style := config.StyleFor(Dialogue)

	if style.MaxCharsPerLine != 35 {
		t.Errorf("Dialogue MaxCharsPerLine = %d, want 35", style.MaxCharsPerLine)
	}
	if !style.CanSplit {
		t.Error("Dialogue CanSplit = false, want true")
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
