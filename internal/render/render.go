package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"okazu/internal/art"
)

// Policy selects how a side dish is divided across the two slots.
type Policy int

const (
	// SplitChars splits a flat run of characters at SlotCapacity.
	SplitChars Policy = iota
	// SplitLines uses the first two lines of a multi-line side dish.
	SplitLines
)

// ParsePolicy resolves a policy name from a CLI flag value.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "chars":
		return SplitChars, nil
	case "lines":
		return SplitLines, nil
	}
	return 0, fmt.Errorf("unknown split policy: %s (available: chars, lines)", name)
}

func (p Policy) String() string {
	if p == SplitLines {
		return "lines"
	}
	return "chars"
}

// Slots derives the two raw slot strings from a side dish. Characters are
// counted as runes, not columns. Anything past the combined capacity is
// dropped rather than growing the template.
func Slots(dish string, p Policy) (string, string) {
	if p == SplitLines {
		if lines := strings.Split(dish, "\n"); len(lines) > 1 {
			return clipRunes(lines[0], art.SlotWidth), clipRunes(lines[1], art.SlotWidth)
		}
	}

	runes := []rune(dish)
	switch n := len(runes); {
	case n <= art.SlotCapacity:
		return dish, ""
	case n <= 2*art.SlotCapacity:
		return string(runes[:art.SlotCapacity]), string(runes[art.SlotCapacity:])
	default:
		return string(runes[:art.SlotCapacity]), string(runes[art.SlotCapacity : 2*art.SlotCapacity])
	}
}

// Frame renders one side dish as the full dragon block. The result always
// has art.TemplateLines lines; each line is padded with trailing spaces to
// width columns, or left unmodified when already wider.
func Frame(dish string, width int, p Policy) []string {
	slot1, slot2 := Slots(dish, p)

	block := strings.NewReplacer(
		art.Slot1Marker, center(slot1, art.SlotWidth),
		art.Slot2Marker, center(slot2, art.SlotWidth),
	).Replace(art.Dragon)

	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(width, lipgloss.Left, line)
	}
	return lines
}

// Caption centers a caption within the fixed caption width.
func Caption(text string) string {
	return center(text, art.CaptionWidth)
}

// BlankCaption is the empty caption line printed under a dragon frame.
func BlankCaption() string {
	return Caption("")
}

func center(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

func clipRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
