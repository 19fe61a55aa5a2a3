package richtext

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var blockElements = []string{"p", "div", "h1", "h2", "h3", "h4", "h5", "h6", "blockquote", "ul", "ol", "li"}

var (
	editorPolicyOnce sync.Once
	editorPolicy     *bluemonday.Policy

	ugcPolicyOnce sync.Once
	ugcPolicy     *bluemonday.Policy
)

// EditorPolicy allows exactly the markup the formatting toolbar can produce.
func EditorPolicy() *bluemonday.Policy {
	editorPolicyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowElements(blockElements...)
		p.AllowElements("br", "strong", "b", "em", "i", "u", "span")
		p.AllowAttrs("href").OnElements("a")
		p.RequireParseableURLs(true)
		p.AllowRelativeURLs(true)
		p.AllowURLSchemes("mailto", "http", "https")
		p.AllowStyles("text-align").MatchingEnum("left", "center", "right").OnElements(blockElements...)
		editorPolicy = p
	})
	return editorPolicy
}

// UGCPolicy is used for markdown bodies that come from the blog API.
func UGCPolicy() *bluemonday.Policy {
	ugcPolicyOnce.Do(func() {
		ugcPolicy = bluemonday.UGCPolicy()
	})
	return ugcPolicy
}

// Sanitize cleans html with the editor policy.
func Sanitize(html string) string {
	return EditorPolicy().Sanitize(html)
}
