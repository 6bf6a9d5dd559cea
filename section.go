package stylebook

import (
	"strconv"
	"strings"
	"unicode"
)

// Section is an outline entry for a heading in a document.
type Section struct {
	// Index is the position of the heading in the document's items.
	Index  int    `json:"index"`
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// Outline returns the headings of items as sections with unique anchors.
// Duplicate anchors get numeric suffixes.
func Outline(items []Item) []Section {
	var sections []Section
	anchorCounts := make(map[string]int)

	for i, item := range items {
		if item.Kind != KindHeading {
			continue
		}

		baseAnchor := generateAnchor(item.Text)
		if baseAnchor == "" {
			baseAnchor = "section"
		}

		anchor := baseAnchor
		if count, exists := anchorCounts[baseAnchor]; exists {
			anchor = baseAnchor + "-" + strconv.Itoa(count)
			anchorCounts[baseAnchor]++
		} else {
			anchorCounts[baseAnchor] = 1
		}

		sections = append(sections, Section{
			Index:  i,
			Level:  item.Level,
			Title:  item.Text,
			Anchor: anchor,
		})
	}

	return sections
}

// OutlineDepths converts heading levels into bookmark depths that never
// skip a level: the first section is depth 0 and each section is at most
// one deeper than the one before it.
func OutlineDepths(sections []Section) []int {
	depths := make([]int, len(sections))
	prevLevel, prevDepth := 0, -1
	for i, s := range sections {
		var depth int
		switch {
		case i == 0:
			depth = 0
		case s.Level > prevLevel:
			depth = prevDepth + 1
		case s.Level == prevLevel:
			depth = prevDepth
		default:
			// Walk back to the nearest earlier section at or above this level.
			depth = 0
			for j := i - 1; j >= 0; j-- {
				if sections[j].Level <= s.Level {
					depth = depths[j]
					if sections[j].Level < s.Level {
						depth++
					}
					break
				}
			}
		}
		depths[i] = depth
		prevLevel, prevDepth = s.Level, depth
	}
	return depths
}

// generateAnchor creates a URL-safe anchor from a title.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
func generateAnchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	result := sb.String()
	// Trim trailing hyphen
	return strings.TrimSuffix(result, "-")
}
