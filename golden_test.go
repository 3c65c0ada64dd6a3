package verso

import (
	"embed"
	"testing"

	"gopkg.in/yaml.v3"
)

//go:embed testdata/golden/*.yaml
var goldenFixtures embed.FS

// goldenElementTypes maps a fixture's snake_case type tag to its
// ElementType, the inverse of ElementType.String.
var goldenElementTypes = map[string]ElementType{
	"scene_heading":       SceneHeading,
	"action":              Action,
	"character":           Character,
	"dialogue":            Dialogue,
	"parenthetical":       Parenthetical,
	"transition":          Transition,
	"shot":                Shot,
	"dual_dialogue_left":  DualDialogueLeft,
	"dual_dialogue_right": DualDialogueRight,
	"act_break":           ActBreak,
	"page_break":          PageBreakElement,
	"blank_line":          BlankLine,
}

type paginationFixture struct {
	Name     string `yaml:"name"`
	Elements []struct {
		ID            string `yaml:"id"`
		Type          string `yaml:"type"`
		Content       string `yaml:"content"`
		CharacterName string `yaml:"character_name"`
	} `yaml:"elements"`
	Expect struct {
		PageCount    int `yaml:"page_count"`
		ElementCount int `yaml:"element_count"`
		WarningCount int `yaml:"warning_count"`
	} `yaml:"expect"`
}

func TestGoldenPaginationSeeds(t *testing.T) {
	data, err := goldenFixtures.ReadFile("testdata/golden/pagination_seeds.yaml")
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}

	var fixtures []paginationFixture
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}

	for _, fx := range fixtures {
		fx := fx
		t.Run(fx.Name, func(t *testing.T) {
			elements := make([]Element, 0, len(fx.Elements))
			for _, fe := range fx.Elements {
				elementType, ok := goldenElementTypes[fe.Type]
				if !ok {
					t.Fatalf("unknown element type %q", fe.Type)
				}
				element := NewElement(ElementID(fe.ID), elementType, fe.Content)
				if fe.CharacterName != "" {
					element = element.WithCharacterName(fe.CharacterName)
				}
				elements = append(elements, element)
			}

			result := Paginate(elements, FeatureFilm())

			if result.Stats.PageCount != fx.Expect.PageCount {
				t.Errorf("PageCount = %d, want %d", result.Stats.PageCount, fx.Expect.PageCount)
			}
			if result.Stats.ElementCount != fx.Expect.ElementCount {
				t.Errorf("ElementCount = %d, want %d", result.Stats.ElementCount, fx.Expect.ElementCount)
			}
			if len(result.Warnings) != fx.Expect.WarningCount {
				t.Errorf("len(Warnings) = %d, want %d", len(result.Warnings), fx.Expect.WarningCount)
			}
		})
	}
}

type splitFixture struct {
	Name          string   `yaml:"name"`
	CharacterName string   `yaml:"character_name"`
	WrappedLines  []string `yaml:"wrapped_lines"`
	SplitAtLine   int      `yaml:"split_at_line"`
	Expect        struct {
		FirstPartLines  int    `yaml:"first_part_lines"`
		SecondPartLines int    `yaml:"second_part_lines"`
		MoreMarker      string `yaml:"more_marker"`
		ContdPrefix     string `yaml:"contd_prefix"`
	} `yaml:"expect"`
}

func TestGoldenSplitSeeds(t *testing.T) {
	data, err := goldenFixtures.ReadFile("testdata/golden/split_seeds.yaml")
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}

	var fixtures []splitFixture
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}

	cm := NewContinuationManager(FeatureFilm())

	for _, fx := range fixtures {
		fx := fx
		t.Run(fx.Name, func(t *testing.T) {
			element := NewElement("fixture", Dialogue, "").WithCharacterName(fx.CharacterName)
			lineCalc := LineCalculation{
				WrappedLines: fx.WrappedLines,
				ContentLines: len(fx.WrappedLines),
			}

			result := cm.SplitDialogue(element, lineCalc, fx.SplitAtLine)

			if result.FirstPartLines != fx.Expect.FirstPartLines {
				t.Errorf("FirstPartLines = %d, want %d", result.FirstPartLines, fx.Expect.FirstPartLines)
			}
			if result.SecondPartLines != fx.Expect.SecondPartLines {
				t.Errorf("SecondPartLines = %d, want %d", result.SecondPartLines, fx.Expect.SecondPartLines)
			}

			gotMore := ""
			if result.MoreMarker != nil {
				gotMore = *result.MoreMarker
			}
			if gotMore != fx.Expect.MoreMarker {
				t.Errorf("MoreMarker = %q, want %q", gotMore, fx.Expect.MoreMarker)
			}

			gotContd := ""
			if result.ContdPrefix != nil {
				gotContd = *result.ContdPrefix
			}
			if gotContd != fx.Expect.ContdPrefix {
				t.Errorf("ContdPrefix = %q, want %q", gotContd, fx.Expect.ContdPrefix)
			}
		})
	}
}
