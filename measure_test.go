package verso

import "testing"

func TestInchesToPoints(t *testing.T) {
	if got := InchesToPoints(1.0); got != 72.0 {
		t.Errorf("InchesToPoints(1.0) = %v, want 72.0", got)
	}
}

func TestPointsToInches(t *testing.T) {
	if got := PointsToInches(72.0); got != 1.0 {
		t.Errorf("PointsToInches(72.0) = %v, want 1.0", got)
	}
}

func TestCharsPerLine(t *testing.T) {
	if got := CharsPerLine(432.0, 7.2); got != 60 {
		t.Errorf("CharsPerLine(432.0, 7.2) = %d, want 60", got)
	}
}

func TestCharsPerLineZeroWidthGuard(t *testing.T) {
	if got := CharsPerLine(432.0, 0); got != 0 {
		t.Errorf("CharsPerLine with zero charWidthPt = %d, want 0", got)
	}
}

func TestLinesPerPage(t *testing.T) {
	if got := LinesPerPage(660.0, 12.0); got != 55 {
		t.Errorf("LinesPerPage(660.0, 12.0) = %d, want 55", got)
	}
}

func TestLinesPerPageZeroHeightGuard(t *testing.T) {
	if got := LinesPerPage(660.0, 0); got != 0 {
		t.Errorf("LinesPerPage with zero lineHeightPt = %d, want 0", got)
	}
}
