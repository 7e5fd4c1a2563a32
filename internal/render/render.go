package render

import "strings"

// Markdown renders markdown content for terminal display with a pooled renderer.
func Markdown(content string, opts Options) (string, error) {
	renderer, err := borrow(opts)
	if err != nil {
		return "", err
	}
	defer release(opts, renderer)

	return renderer.Render(content)
}

// Reply renders an assistant reply, falling back to the raw text when the
// renderer cannot be built. Surrounding blank lines are trimmed.
func Reply(text string, opts Options) string {
	out, err := Markdown(text, opts)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
