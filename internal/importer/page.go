package importer

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

// chromeSelector matches page furniture that never belongs in a doc.
const chromeSelector = "script, style, noscript, iframe, svg, nav, header, footer, aside, form"

// PageToMarkdown strips page chrome from raw HTML and converts the rest to
// markdown. The result is what the extractor sends to the model.
func PageToMarkdown(html string) (string, error) {
	cleaned, err := stripChrome(html)
	if err != nil {
		return "", err
	}

	markdown, err := htmltomarkdown.ConvertString(cleaned)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(markdown), nil
}

func stripChrome(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find(chromeSelector).Remove()

	return doc.Html()
}
