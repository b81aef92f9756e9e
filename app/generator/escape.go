package generator

import "strings"

// All escaping of user-authored content (titles and descriptions can carry
// quotes, braces or angle brackets) is centralized here rather than inlined
// at each interpolation site.

var jsReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

var jsxReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"{", "&#123;",
	"}", "&#125;",
)

// escapeJS escapes s for use inside a double-quoted JS string literal.
func escapeJS(s string) string {
	return jsReplacer.Replace(s)
}

// escapeJSX escapes s for use as JSX text content.
func escapeJSX(s string) string {
	return jsxReplacer.Replace(s)
}
