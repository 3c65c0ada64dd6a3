package verso

import (
	"math"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// LineCalculation is the transient output of the Line Calculator: the
// wrapped lines of an element's content plus the line counts derived from
// them.
type LineCalculation struct {
	// WrappedLines is the ordered sequence of wrapped lines.
	WrappedLines []string

	// ContentLines is the number of wrapped lines, before spacing.
	ContentLines int

	SpaceBefore int
	SpaceAfter  int

	// TotalLines is ceil(ContentLines * LineSpacing) + SpaceAfter.
	TotalLines int
}

// LineCalculator wraps element content into a fixed-pitch line grid and
// computes content-lines, space-before/after, and total lines.
type LineCalculator struct {
	config PageConfig
}

// NewLineCalculator returns a LineCalculator bound to config.
func NewLineCalculator(config PageConfig) LineCalculator {
	return LineCalculator{config: config}
}

// Calculate computes the LineCalculation for element under the
// calculator's config.
func (lc LineCalculator) Calculate(element Element) LineCalculation {
	style := lc.config.StyleFor(element.Type)

	wrapped := wrapText(element.Content, style.MaxCharsPerLine)
	contentLines := len(wrapped)

	spacedLines := contentLines
	if style.LineSpacing > 1.0 {
		spacedLines = int(math.Ceil(float64(contentLines) * style.LineSpacing))
	}

	return LineCalculation{
		WrappedLines: wrapped,
		ContentLines: contentLines,
		SpaceBefore:  style.SpaceBefore,
		SpaceAfter:   style.SpaceAfter,
		TotalLines:   spacedLines + style.SpaceAfter,
	}
}

// CalculateWithSpacing computes the LineCalculation for element, adding
// SpaceBefore into TotalLines unless atPageStart.
func (lc LineCalculator) CalculateWithSpacing(element Element, atPageStart bool) LineCalculation {
	calc := lc.Calculate(element)
	if !atPageStart {
		calc.TotalLines += calc.SpaceBefore
	}
	return calc
}

// ContentLineCount returns just the content-line count for element,
// without building the rest of a LineCalculation.
func (lc LineCalculator) ContentLineCount(element Element) int {
	style := lc.config.StyleFor(element.Type)
	return len(wrapText(element.Content, style.MaxCharsPerLine))
}

// CalculateElementLines returns the total_lines of element's
// LineCalculation under config — the auxiliary operation consumed by
// external collaborators (e.g. for a preview of a single element's
// footprint before a full pagination pass).
func CalculateElementLines(element Element, config PageConfig) uint32 {
	return uint32(NewLineCalculator(config).Calculate(element).TotalLines)
}

// wrapText greedily first-fit wraps text into lines of at most maxChars
// grapheme clusters, honoring the degenerate maxChars == 0 guard and the
// empty-paragraph/empty-token-list rules.
//
// Input is normalized to NFC first so that canonically equivalent but
// differently-encoded screenplay text (e.g. a precomposed vs. combining
// accented character name) always wraps to byte-identical output,
// preserving the determinism invariant across encodings.
func wrapText(text string, maxChars int) []string {
	if maxChars == 0 {
		return []string{text}
	}

	text = norm.NFC.String(text)

	var lines []string

	for _, paragraph := range strings.Split(text, "\n") {
		if paragraph == "" {
			lines = append(lines, "")
			continue
		}

		tokens := strings.Fields(paragraph)
		if len(tokens) == 0 {
			lines = append(lines, "")
			continue
		}

		var current string
		for _, token := range tokens {
			switch {
			case current == "":
				if graphemeLen(token) > maxChars {
					lines = append(lines, breakLongWord(token, maxChars)...)
				} else {
					current = token
				}
			case graphemeLen(current)+1+graphemeLen(token) <= maxChars:
				current = current + " " + token
			default:
				lines = append(lines, current)
				if graphemeLen(token) > maxChars {
					lines = append(lines, breakLongWord(token, maxChars)...)
					current = ""
				} else {
					current = token
				}
			}
		}

		if current != "" {
			lines = append(lines, current)
		}
	}

	if len(lines) == 0 && text != "" {
		lines = append(lines, "")
	}

	return lines
}

// breakLongWord hard-breaks word into chunks of maxChars grapheme clusters
// each; the last chunk may be shorter.
func breakLongWord(word string, maxChars int) []string {
	clusters := graphemeClusters(word)
	var chunks []string
	for len(clusters) > maxChars {
		chunks = append(chunks, strings.Join(clusters[:maxChars], ""))
		clusters = clusters[maxChars:]
	}
	if len(clusters) > 0 {
		chunks = append(chunks, strings.Join(clusters, ""))
	}
	return chunks
}

// graphemeLen returns the length of s in grapheme clusters, the string
// unit this package uses consistently for every wrap-width comparison.
func graphemeLen(s string) int {
	count := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		count++
	}
	return count
}

// graphemeClusters splits s into its grapheme clusters.
func graphemeClusters(s string) []string {
	var clusters []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	return clusters
}
