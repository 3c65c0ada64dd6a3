package verso

import "strings"

// SplitResult is the transient output of the Continuation Manager: the two
// halves of a split element's wrapped lines, plus any MORE/CONT'D markers.
type SplitResult struct {
	FirstPartLines  int
	SecondPartLines int

	FirstPartContent  []string
	SecondPartContent []string

	// MoreMarker is set only for a non-trivial dialogue split with
	// continuation markers enabled.
	MoreMarker *string

	// ContdPrefix is set only when MoreMarker is set and the element
	// carries a character name.
	ContdPrefix *string
}

// ContinuationManager splits a wrapped element at a given line index and
// computes MORE/CONT'D markers for dialogue.
type ContinuationManager struct {
	config PageConfig
}

// NewContinuationManager returns a ContinuationManager bound to config.
func NewContinuationManager(config PageConfig) ContinuationManager {
	return ContinuationManager{config: config}
}

// SplitDialogue splits element's wrapped lines at splitAtLine and, if
// continuation is enabled and a non-empty second part remains, attaches a
// MORE marker and — when element carries a character name — a CONT'D
// prefix built from the ASCII-uppercased character name.
func (cm ContinuationManager) SplitDialogue(element Element, lineCalc LineCalculation, splitAtLine int) SplitResult {
	style := cm.config.ContinuationStyle

	first, second := splitWrappedLines(lineCalc.WrappedLines, splitAtLine)

	result := SplitResult{
		FirstPartLines:    len(first),
		SecondPartLines:   len(second),
		FirstPartContent:  first,
		SecondPartContent: second,
	}

	if style.Enabled && len(second) > 0 {
		more := style.MoreMarker
		result.MoreMarker = &more

		if element.HasCharacterName() {
			contd := asciiUpper(element.CharacterName) + " " + style.ContdMarker
			result.ContdPrefix = &contd
		}
	}

	return result
}

// SplitAction splits element's wrapped lines at splitAtLine with no
// continuation markers; split_action never emits MORE/CONT'D.
func (cm ContinuationManager) SplitAction(lineCalc LineCalculation, splitAtLine int) SplitResult {
	first, second := splitWrappedLines(lineCalc.WrappedLines, splitAtLine)
	return SplitResult{
		FirstPartLines:    len(first),
		SecondPartLines:   len(second),
		FirstPartContent:  first,
		SecondPartContent: second,
	}
}

// IsEnabled reports whether continuation markers are enabled in config.
func (cm ContinuationManager) IsEnabled() bool {
	return cm.config.ContinuationStyle.Enabled
}

// MoreMarkerText returns the configured MORE marker string.
func (cm ContinuationManager) MoreMarkerText() string {
	return cm.config.ContinuationStyle.MoreMarker
}

// ContdMarkerText returns the configured CONT'D marker string.
func (cm ContinuationManager) ContdMarkerText() string {
	return cm.config.ContinuationStyle.ContdMarker
}

// splitWrappedLines returns wrapped[0:min(k,N)] and wrapped[min(k,N):N].
func splitWrappedLines(wrapped []string, k int) ([]string, []string) {
	n := len(wrapped)
	if k > n {
		k = n
	}
	if k < 0 {
		k = 0
	}
	first := append([]string(nil), wrapped[:k]...)
	second := append([]string(nil), wrapped[k:]...)
	return first, second
}

// asciiUpper uppercases s using the locale-independent ASCII rule, for
// deterministic CONT'D prefixes regardless of host locale.
func asciiUpper(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, s)
}
