package letterdoc

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const memoCSS = `
body { font-family: "Hiragino Sans", "Noto Sans JP", sans-serif; color: #1f2937; line-height: 1.8; max-width: 760px; margin: 0 auto; padding: 1.5rem; }
h1 { font-size: 1.5rem; border-bottom: 2px solid #0f766e; padding-bottom: 0.4rem; }
h2 { font-size: 1.15rem; color: #0f766e; margin-top: 1.6rem; }
blockquote { margin: 0; padding: 0.2rem 1rem; border-left: 3px solid #0f766e; background: #f0fdfa; }
blockquote p { margin: 0.3rem 0; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #d1d5db; padding: 0.4rem 0.6rem; text-align: left; }
th { background: #f3f4f6; }
em { color: #6b7280; font-size: 0.85rem; }
`

// RenderHTML converts the memo markdown into a standalone HTML document.
func RenderHTML(memoMarkdown string) (string, error) {
	var content strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(memoMarkdown), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return "<!doctype html><html lang='ja'><head><meta charset='utf-8'>" +
		"<title>未来のわたしからの手紙</title>" +
		"<style>" + memoCSS + "</style></head><body>" +
		content.String() +
		"</body></html>", nil
}
