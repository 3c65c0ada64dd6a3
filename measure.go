package verso

import "math"

// Points-per-inch and the Courier 12pt metrics used by the feature-film
// default configuration. These constants, and the conversions below, exist
// for external renderers that need to map the core's line-based layout
// back to a physical page; the decision engine itself never consults them.
const (
	PointsPerInch       = 72.0
	Courier12ptCharWidth = 7.2
	Courier12ptLineHeight = 12.0
)

// InchesToPoints converts inches to points.
func InchesToPoints(inches float64) float64 {
	return inches * PointsPerInch
}

// PointsToInches converts points to inches.
func PointsToInches(points float64) float64 {
	return points / PointsPerInch
}

// CharsPerLine estimates how many monospace characters of the given width
// fit in widthPt of horizontal space.
func CharsPerLine(widthPt, charWidthPt float64) int {
	if charWidthPt <= 0 {
		return 0
	}
	return int(math.Floor(widthPt / charWidthPt))
}

// LinesPerPage estimates how many lines of the given height fit in
// heightPt of vertical space.
func LinesPerPage(heightPt, lineHeightPt float64) int {
	if lineHeightPt <= 0 {
		return 0
	}
	return int(math.Floor(heightPt / lineHeightPt))
}
