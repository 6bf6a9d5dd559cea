package rod

import (
	"bytes"
	"html/template"

	"github.com/fwojciec/stylebook"
)

// documentTemplate lays out a document for Chrome's print-to-PDF. Spacing
// mirrors the fpdf renderer: 0.5cm above headings, 0.2cm above paragraphs
// and a 1cm list indent.
var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
@page { size: A4; margin: 2cm 2cm 2.5cm 2cm; }
body { font-family: Helvetica, Arial, sans-serif; font-size: 10pt; line-height: 1.25; margin: 0; }
h1, h2, h3 { font-weight: bold; margin: 0.5cm 0 0 0; page-break-after: avoid; }
h1 { font-size: 18pt; }
h2 { font-size: 14pt; }
h3 { font-size: 12pt; }
p { margin: 0.2cm 0 0 0; }
ul { margin: 0; padding-left: 1cm; }
li p { margin: 0; }
</style>
</head>
<body>
{{- range .Blocks}}
{{- if eq .Kind "heading"}}
{{- if eq .Level 1}}
<h1 id="{{.Anchor}}">{{.Text}}</h1>
{{- else if eq .Level 2}}
<h2 id="{{.Anchor}}">{{.Text}}</h2>
{{- else}}
<h3 id="{{.Anchor}}">{{.Text}}</h3>
{{- end}}
{{- else if eq .Kind "paragraph"}}
<p>{{.Text}}</p>
{{- else if eq .Kind "list"}}
<ul>
{{- range .Entries}}
<li><p>{{.}}</p></li>
{{- end}}
</ul>
{{- end}}
{{- end}}
</body>
</html>
`))

// footerTemplate is rendered by Chrome in the bottom page margin.
const footerTemplate = `<div style="font-family: Helvetica, Arial, sans-serif; font-size: 8px; width: 100%; text-align: center;">` +
	`<span class="title"></span> - page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`

type block struct {
	Kind    string
	Level   int
	Anchor  string
	Text    string
	Entries []string
}

// BuildHTML returns the printable HTML for doc along with a result that
// lists the items left out. Text is escaped, so only paragraphs failing
// stylebook.CheckRenderable are rejected.
func BuildHTML(doc *stylebook.Document) (string, *stylebook.RenderResult, error) {
	anchors := make(map[int]string)
	for _, s := range stylebook.Outline(doc.Items) {
		anchors[s.Index] = s.Anchor
	}

	result := &stylebook.RenderResult{}
	blocks := make([]block, 0, len(doc.Items))
	for i, item := range doc.Items {
		switch item.Kind {
		case stylebook.KindHeading:
			blocks = append(blocks, block{
				Kind:   string(item.Kind),
				Level:  item.Level,
				Anchor: anchors[i],
				Text:   stylebook.SanitizeText(item.Text),
			})
		case stylebook.KindParagraph:
			if err := stylebook.CheckRenderable(item.Text); err != nil {
				result.Skipped = append(result.Skipped, stylebook.SkippedItem{
					Index:  i,
					Item:   item,
					Reason: stylebook.ErrorMessage(err),
				})
				continue
			}
			blocks = append(blocks, block{Kind: string(item.Kind), Text: item.Text})
		case stylebook.KindList:
			entries := make([]string, len(item.Entries))
			for j, e := range item.Entries {
				entries[j] = stylebook.SanitizeText(e)
			}
			blocks = append(blocks, block{Kind: string(item.Kind), Entries: entries})
		default:
			result.Skipped = append(result.Skipped, stylebook.SkippedItem{
				Index:  i,
				Item:   item,
				Reason: "unknown item kind " + string(item.Kind),
			})
			continue
		}
		result.Rendered++
	}

	var buf bytes.Buffer
	err := documentTemplate.Execute(&buf, struct {
		Title  string
		Blocks []block
	}{
		Title:  doc.Category.Name,
		Blocks: blocks,
	})
	if err != nil {
		return "", nil, err
	}

	return buf.String(), result, nil
}
