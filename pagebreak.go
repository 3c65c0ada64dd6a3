package verso

import (
	"strconv"
	"time"
)

// breakDecision is a closed, three-case tagged variant: an element either
// Fits on the current page, must BreakBefore (push to the next page), or
// can SplitAt a given content-line index. There is deliberately no default
// branch anywhere a breakDecision is consumed.
type breakDecision interface {
	isBreakDecision()
}

type decisionFits struct{}

func (decisionFits) isBreakDecision() {}

type decisionBreakBefore struct{}

func (decisionBreakBefore) isBreakDecision() {}

type decisionSplitAt struct {
	Line int
}

func (decisionSplitAt) isBreakDecision() {}

// paginationState is the Page Breaker's mutable working state: finalized
// pages, the page currently being filled, the element-position index,
// warnings, and run counters. It is constructed at entry, mutated only by
// the Page Breaker, and consumed once into a PaginationResult.
type paginationState struct {
	pages             []Page
	currentPage       Page
	pageNumber        int
	elementPositions  map[ElementID]ElementPosition
	warnings          []PaginationWarning
	breakCount        int
	continuationCount int
}

func newPaginationState() *paginationState {
	return &paginationState{
		currentPage:      NewPage(Sequential(1)),
		pageNumber:       1,
		elementPositions: make(map[ElementID]ElementPosition),
	}
}

// atPageStart reports whether the current page has no lines used yet.
func (s *paginationState) atPageStart() bool {
	return s.currentPage.LinesUsed == 0
}

// linesRemaining returns the lines left on the current page, saturating
// at zero.
func (s *paginationState) linesRemaining(linesPerPage int) int {
	return s.currentPage.LinesRemaining(linesPerPage)
}

// endPage closes the current page, appends it to pages, and opens a new
// Sequential page numbered one past the last.
func (s *paginationState) endPage(_ PageBreakReason) {
	finished := s.currentPage
	s.currentPage = NewPage(Sequential(s.pageNumber + 1))
	s.pages = append(s.pages, finished)
	s.pageNumber++
	s.breakCount++
}

// addElement places element as a single, unsplit placement on the current
// page and records its position.
func (s *paginationState) addElement(element Element, calc LineCalculation, atPageStart bool) {
	spaceBefore := 0
	if !atPageStart {
		spaceBefore = calc.SpaceBefore
	}
	startLine := s.currentPage.LinesUsed + spaceBefore + 1

	s.currentPage.Elements = append(s.currentPage.Elements, PageElement{
		ElementID: element.ID,
		StartLine: startLine,
		LineCount: calc.ContentLines,
	})
	s.currentPage.LinesUsed += spaceBefore + calc.TotalLines

	s.elementPositions[element.ID] = ElementPosition{
		Pages:     []PageIdentifier{s.currentPage.Identifier},
		StartLine: startLine,
		EndLine:   startLine + calc.ContentLines - 1,
		IsSplit:   false,
	}
}

// addSplitFirstPart places the first half of a split element on the
// current page, always receiving the style-derived spaceBefore and
// zeroing it internally when at page start (the unified contract resolving
// spec.md's space-before open question). It returns the start line the
// first half was placed at.
func (s *paginationState) addSplitFirstPart(element Element, firstLines int, moreMarker *string, atPageStart bool, spaceBefore int) int {
	actualSpace := 0
	if !atPageStart {
		actualSpace = spaceBefore
	}
	startLine := s.currentPage.LinesUsed + actualSpace + 1

	s.currentPage.Elements = append(s.currentPage.Elements, PageElement{
		ElementID: element.ID,
		StartLine: startLine,
		LineCount: firstLines,
		LineRange: &LineRange{Start: 0, End: firstLines},
	})
	s.currentPage.LinesUsed += actualSpace + firstLines

	if moreMarker != nil {
		s.currentPage.BottomContinuation = moreMarker
		s.currentPage.LinesUsed++ // the MORE marker occupies one more line
		s.continuationCount++
	}

	return startLine
}

// addSplitSecondPart places the second half of a split element on the
// (already opened) new current page. It returns the start line the second
// half was placed at.
func (s *paginationState) addSplitSecondPart(element Element, firstLines, secondLines int, contdPrefix *string) int {
	extraLines := 0
	if contdPrefix != nil {
		extraLines = 1
	}
	startLine := 1 + extraLines

	s.currentPage.Elements = append(s.currentPage.Elements, PageElement{
		ElementID:          element.ID,
		StartLine:          startLine,
		LineCount:          secondLines,
		IsContinuation:     true,
		LineRange:          &LineRange{Start: firstLines, End: firstLines + secondLines},
		ContinuationPrefix: contdPrefix,
	})
	s.currentPage.LinesUsed = extraLines + secondLines

	return startLine
}

// recordSplitPosition records the ElementPosition for a split element
// spanning firstPage and secondPage.
func (s *paginationState) recordSplitPosition(id ElementID, firstPage, secondPage PageIdentifier, startLine, endLine int) {
	s.elementPositions[id] = ElementPosition{
		Pages:     []PageIdentifier{firstPage, secondPage},
		StartLine: startLine,
		EndLine:   endLine,
		IsSplit:   true,
	}
}

func (s *paginationState) addWarning(id *ElementID, warningType WarningType, message string) {
	s.warnings = append(s.warnings, PaginationWarning{
		ElementID:   id,
		WarningType: warningType,
		Message:     message,
	})
}

// finalize pushes the in-progress page (if non-empty) and returns the
// complete PaginationResult.
func (s *paginationState) finalize(timingUs int64, elementCount int) PaginationResult {
	if len(s.currentPage.Elements) > 0 {
		s.pages = append(s.pages, s.currentPage)
	}

	return PaginationResult{
		Pages:            s.pages,
		ElementPositions: s.elementPositions,
		Warnings:         s.warnings,
		Stats: PaginationStats{
			PageCount:         len(s.pages),
			ElementCount:      elementCount,
			BreakCount:        s.breakCount,
			ContinuationCount: s.continuationCount,
			TimingUs:          timingUs,
		},
	}
}

// Paginate drives a single left-to-right pass over elements, consulting
// the Line Calculator and Continuation Manager, and returns a complete
// PaginationResult. It is a pure, total function: no condition aborts
// pagination, and the only non-deterministic observable is Stats.TimingUs.
func Paginate(elements []Element, config PageConfig) PaginationResult {
	start := time.Now()

	calc := NewLineCalculator(config)
	contMgr := NewContinuationManager(config)
	state := newPaginationState()

	for idx, element := range elements {
		if element.Type == PageBreakElement {
			if !state.atPageStart() {
				state.endPage(Forced)
			}
			continue
		}

		lineCalc := calc.Calculate(element)

		atStart := state.atPageStart()
		effectiveSpaceBefore := 0
		if !atStart {
			effectiveSpaceBefore = lineCalc.SpaceBefore
		}
		totalNeeded := effectiveSpaceBefore + lineCalc.TotalLines
		remaining := state.linesRemaining(config.LinesPerPage)

		decision := decideBreak(element, lineCalc, totalNeeded, remaining, config, elements[idx:])

		switch d := decision.(type) {
		case decisionFits:
			state.addElement(element, lineCalc, atStart)

		case decisionBreakBefore:
			if !atStart {
				state.endPage(OrphanPrevention)
			}
			state.addElement(element, lineCalc, true)

		case decisionSplitAt:
			var split SplitResult
			if element.Type == Dialogue {
				split = contMgr.SplitDialogue(element, lineCalc, d.Line)
			} else {
				split = contMgr.SplitAction(lineCalc, d.Line)
			}

			if split.FirstPartLines > 0 && split.SecondPartLines > 0 {
				firstPage := state.currentPage.Identifier
				startLine := state.currentPage.LinesUsed + effectiveSpaceBefore + 1

				state.addSplitFirstPart(element, split.FirstPartLines, split.MoreMarker, atStart, lineCalc.SpaceBefore)
				state.endPage(DialogueContinuation)

				secondPage := state.currentPage.Identifier
				secondStartLine := state.addSplitSecondPart(element, split.FirstPartLines, split.SecondPartLines, split.ContdPrefix)
				endLine := secondStartLine + split.SecondPartLines - 1

				state.recordSplitPosition(element.ID, firstPage, secondPage, startLine, endLine)
			} else {
				// Degenerate split (first or second half empty): fall back
				// to BreakBefore.
				if !atStart {
					state.endPage(OrphanPrevention)
				}
				state.addElement(element, lineCalc, true)
			}
		}

		if element.ForcePageBreakAfter && !state.atPageStart() {
			state.endPage(Forced)
		}

		if lineCalc.TotalLines > config.LinesPerPage {
			id := element.ID
			state.addWarning(&id, ElementExceedsPage, sprintExceedsPage(lineCalc.TotalLines, config.LinesPerPage))
		}
	}

	timingUs := time.Since(start).Microseconds()
	return state.finalize(timingUs, len(elements))
}

// decideBreak resolves the BreakDecision for element per the per-type
// splittability and orphan/widow rules.
func decideBreak(element Element, lineCalc LineCalculation, totalNeeded, remaining int, config PageConfig, upcoming []Element) breakDecision {
	if totalNeeded <= remaining {
		style := config.StyleFor(element.Type)
		if style.KeepWithNext && len(upcoming) > 1 {
			following := estimateFollowingLines(config, upcoming[1:], style.KeepWithNextLines)
			if totalNeeded+following > remaining {
				return decisionBreakBefore{}
			}
		}
		return decisionFits{}
	}

	style := config.StyleFor(element.Type)
	orphan := config.OrphanControl

	switch element.Type {
	case Dialogue:
		if !style.CanSplit {
			return decisionBreakBefore{}
		}

		minBefore := orphan.DialogueMinBeforeSplit
		minAfter := orphan.DialogueMinAfterSplit
		avail := saturatingSub(remaining, lineCalc.SpaceBefore)

		if avail >= minBefore {
			remainingAfterSplit := saturatingSub(lineCalc.ContentLines, avail)
			if remainingAfterSplit >= minAfter {
				splitLine := avail - 1
				if splitLine >= minBefore {
					return decisionSplitAt{Line: splitLine}
				}
			}
		}
		return decisionBreakBefore{}

	case Action:
		if !style.CanSplit {
			return decisionBreakBefore{}
		}

		minBefore := style.MinLinesBeforeSplit
		minAfter := style.MinLinesAfterSplit
		avail := saturatingSub(remaining, lineCalc.SpaceBefore)

		if avail >= minBefore {
			remainingAfterSplit := saturatingSub(lineCalc.ContentLines, avail)
			if remainingAfterSplit >= minAfter {
				return decisionSplitAt{Line: avail}
			}
		}
		return decisionBreakBefore{}

	default:
		// SceneHeading, Character, Parenthetical, Transition, ActBreak,
		// Shot, BlankLine, dual-dialogue variants, and any unknown type
		// default to BreakBefore.
		return decisionBreakBefore{}
	}
}

// estimateFollowingLines sums the estimated lines of up to count of the
// upcoming elements, charging space_before to every element but the first
// (which immediately follows the keep-with-next element).
func estimateFollowingLines(config PageConfig, upcoming []Element, count int) int {
	calc := NewLineCalculator(config)
	total := 0
	for i, element := range upcoming {
		if i >= count {
			break
		}
		l := calc.Calculate(element)
		if i == 0 {
			total += l.ContentLines
		} else {
			total += l.SpaceBefore + l.ContentLines
		}
	}
	return total
}

// saturatingSub returns max(0, a-b).
func saturatingSub(a, b int) int {
	d := a - b
	if d < 0 {
		return 0
	}
	return d
}

func sprintExceedsPage(totalLines, linesPerPage int) string {
	return "element requires " + strconv.Itoa(totalLines) + " lines but page only has " + strconv.Itoa(linesPerPage) + " lines"
}
