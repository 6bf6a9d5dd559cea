package stylebook

// ItemKind identifies the variant of a content Item.
type ItemKind string

// ItemKind constants.
const (
	KindHeading   ItemKind = "heading"
	KindParagraph ItemKind = "paragraph"
	KindList      ItemKind = "list"
)

// Item is one structured unit of extracted page content.
//
// Headings use Text and Level (1-6, taken from the HTML tag). Paragraphs use
// Text. Lists use Entries, one per list item, in source order. Text and
// Entries are plain text: inline markup has been removed and whitespace
// collapsed.
type Item struct {
	Kind    ItemKind `json:"kind"`
	Level   int      `json:"level,omitempty"`
	Text    string   `json:"text,omitempty"`
	Entries []string `json:"entries,omitempty"`
}

// Heading returns a heading item at the given level.
func Heading(level int, text string) Item {
	return Item{Kind: KindHeading, Level: level, Text: text}
}

// Paragraph returns a paragraph item.
func Paragraph(text string) Item {
	return Item{Kind: KindParagraph, Text: text}
}

// List returns a list item holding the given entries.
func List(entries ...string) Item {
	return Item{Kind: KindList, Entries: entries}
}

// Validate returns an error if the item is not a well-formed variant.
func (i *Item) Validate() error {
	switch i.Kind {
	case KindHeading:
		if i.Level < 1 || i.Level > 6 {
			return Errorf(EINVALID, "heading level %d out of range", i.Level)
		}
		if i.Text == "" {
			return Errorf(EINVALID, "heading text required")
		}
	case KindParagraph:
		if i.Text == "" {
			return Errorf(EINVALID, "paragraph text required")
		}
	case KindList:
		if len(i.Entries) == 0 {
			return Errorf(EINVALID, "list entries required")
		}
	default:
		return Errorf(EINVALID, "unknown item kind %q", i.Kind)
	}
	return nil
}
