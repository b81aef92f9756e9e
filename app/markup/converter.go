// Package markup converts the draft markdown subset into the inline JSX
// fragments embedded by the page generator. The conversion is a fixed,
// ordered list of text transforms: a single regex pass cannot tell
// block-level constructs apart from generic paragraphs, so later passes
// repair over-eager wrapping by earlier ones. Nested lists, ordered lists,
// code blocks and blockquotes are not supported and pass through as literal
// paragraph text.
package markup

import (
	"regexp"
	"strings"
)

var (
	h1Re       = regexp.MustCompile(`(?m)^# (.+)$`)
	h2Re       = regexp.MustCompile(`(?m)^## (.+)$`)
	h3Re       = regexp.MustCompile(`(?m)^### (.+)$`)
	boldRe     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe   = regexp.MustCompile(`\*([^*\n]+)\*`)
	linkRe     = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	listItemRe = regexp.MustCompile(`(?m)^- (.+)$`)
	listRunRe  = regexp.MustCompile(`(?m)((?:^<li[^\n]*\n?)+)`)

	wrappedBlockRe = regexp.MustCompile(`<p className="[^"]*">(</?(?:h[1-3]|ul|li)[^\n]*?)</p>`)
	tableRowRe     = regexp.MustCompile(`^<p className="[^"]*">\|(.+)\|</p>$`)
)

const paragraphOpen = `<p className="text-gray-600 leading-relaxed my-4">`

// pass is one ordered transform in the conversion pipeline
type pass struct {
	name string
	fn   func(string) string
}

type Converter struct {
	passes []pass
}

func NewConverter() *Converter {
	return &Converter{
		passes: []pass{
			{"headings", convertHeadings},
			{"bold", convertBold},
			{"italic", convertItalic},
			{"links", convertLinks},
			{"lists", convertLists},
			{"paragraphs", wrapParagraphs},
			{"unwrap-blocks", unwrapBlockElements},
			{"tables", convertTableRows},
		},
	}
}

// Run applies every pass in order and returns the converted fragment.
func (c *Converter) Run(markdown string) string {
	out := markdown
	for _, p := range c.passes {
		out = p.fn(out)
	}
	return strings.TrimSpace(out)
}

func convertHeadings(s string) string {
	s = h3Re.ReplaceAllString(s, `<h3 className="text-2xl font-semibold mt-6 mb-3">$1</h3>`)
	s = h2Re.ReplaceAllString(s, `<h2 className="text-3xl font-bold mt-8 mb-4">$1</h2>`)
	s = h1Re.ReplaceAllString(s, `<h1 className="text-4xl font-bold mt-10 mb-6">$1</h1>`)
	return s
}

func convertBold(s string) string {
	return boldRe.ReplaceAllString(s, "<strong>$1</strong>")
}

func convertItalic(s string) string {
	return italicRe.ReplaceAllString(s, "<em>$1</em>")
}

func convertLinks(s string) string {
	return linkRe.ReplaceAllString(s, `<a href="$2" className="text-blue-600 hover:underline">$1</a>`)
}

// convertLists rewrites unordered list items and wraps each consecutive run
// of items in a list container. A lone dash line still becomes a one-item
// list; lines without the marker are untouched.
func convertLists(s string) string {
	s = listItemRe.ReplaceAllString(s, `<li className="ml-4">$1</li>`)
	return listRunRe.ReplaceAllStringFunc(s, func(run string) string {
		return `<ul className="list-disc pl-6 space-y-2 my-4">` + "\n" +
			strings.TrimRight(run, "\n") + "\n</ul>\n"
	})
}

// wrapParagraphs wraps every remaining non-empty line. It is deliberately
// generic and also catches the block elements produced by earlier passes;
// unwrapBlockElements repairs those afterwards.
func wrapParagraphs(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			lines[i] = ""
			continue
		}
		lines[i] = paragraphOpen + trimmed + "</p>"
	}
	return strings.Join(lines, "\n")
}

func unwrapBlockElements(s string) string {
	return wrappedBlockRe.ReplaceAllString(s, "$1")
}

// convertTableRows is the final best-effort pass for pipe-delimited lines:
// each wrapped row becomes a table row, separator rows are dropped. No
// surrounding table element is emitted.
func convertTableRows(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		m := tableRowRe.FindStringSubmatch(line)
		if m == nil {
			out = append(out, line)
			continue
		}
		if isSeparatorRow(m[1]) {
			continue
		}

		var b strings.Builder
		b.WriteString("<tr>")
		for _, cell := range strings.Split(m[1], "|") {
			b.WriteString(`<td className="border border-gray-200 px-4 py-2">`)
			b.WriteString(strings.TrimSpace(cell))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
		out = append(out, b.String())
	}

	return strings.Join(out, "\n")
}

func isSeparatorRow(row string) bool {
	trim := strings.ReplaceAll(row, "-", "")
	trim = strings.ReplaceAll(trim, ":", "")
	trim = strings.ReplaceAll(trim, "|", "")
	trim = strings.ReplaceAll(trim, " ", "")
	return trim == ""
}
