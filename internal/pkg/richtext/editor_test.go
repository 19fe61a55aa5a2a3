package richtext

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type changeRecorder struct {
	calls []string
}

func (r *changeRecorder) onChange(html string) {
	r.calls = append(r.calls, html)
}

func newEditor(html string) (*Editor, *changeRecorder) {
	rec := &changeRecorder{}
	return New(html, true, rec.onChange), rec
}

func strPtr(s string) *string { return &s }

func TestEditor_BoldTogglesAndNotifies(t *testing.T) {
	ed, rec := newEditor("<p>Hello</p><p>World</p>")

	require.NoError(t, ed.Bold(0))
	assert.Equal(t, "<p><strong>Hello</strong></p><p>World</p>", ed.HTML())

	require.NoError(t, ed.Bold(0))
	assert.Equal(t, "<p>Hello</p><p>World</p>", ed.HTML())

	assert.Equal(t, []string{
		"<p><strong>Hello</strong></p><p>World</p>",
		"<p>Hello</p><p>World</p>",
	}, rec.calls, "every mutation reports the serialised html")
}

func TestEditor_InlineFormats(t *testing.T) {
	ed, _ := newEditor("<p>a</p>")
	require.NoError(t, ed.Italic(0))
	require.NoError(t, ed.Underline(0))
	assert.Equal(t, "<p><u><em>a</em></u></p>", ed.HTML())
}

func TestEditor_LooseInlineContentBecomesAParagraph(t *testing.T) {
	ed, _ := newEditor("Hello <b>there</b>")
	require.NoError(t, ed.Italic(0))
	assert.Equal(t, "<p><em>Hello <b>there</b></em></p>", ed.HTML())
}

func TestEditor_Align(t *testing.T) {
	ed, _ := newEditor("<p>Hello</p><p>World</p>")

	require.NoError(t, ed.Align(1, AlignCenter))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(ed.HTML()))
	require.NoError(t, err)
	style, ok := doc.Find("p").Eq(1).Attr("style")
	require.True(t, ok)
	assert.Contains(t, style, "center")

	assert.ErrorIs(t, ed.Align(0, "justify"), ErrBadAlignment)
}

func TestEditor_Lists(t *testing.T) {
	ed, _ := newEditor("<p>Item</p>")

	require.NoError(t, ed.BulletList(0))
	assert.Equal(t, "<ul><li>Item</li></ul>", ed.HTML())

	require.NoError(t, ed.NumberedList(0))
	assert.Equal(t, "<ol><li>Item</li></ol>", ed.HTML())

	require.NoError(t, ed.Bold(0))
	assert.Equal(t, "<ol><li><strong>Item</strong></li></ol>", ed.HTML())

	require.NoError(t, ed.NumberedList(0))
	assert.Equal(t, "<p><strong>Item</strong></p>", ed.HTML())
}

func TestEditor_SetLink(t *testing.T) {
	ed, rec := newEditor("<p>Read more</p>")

	require.NoError(t, ed.SetLink(0, nil))
	assert.Empty(t, rec.calls, "a cancelled prompt is a no-op")

	require.NoError(t, ed.SetLink(0, strPtr("https://example.org/a?b=1&c=2")))
	assert.Equal(t, `<p><a href="https://example.org/a?b=1&amp;c=2">Read more</a></p>`, ed.HTML())

	require.NoError(t, ed.SetLink(0, strPtr("https://example.org/new")))
	assert.Equal(t, `<p><a href="https://example.org/new">Read more</a></p>`, ed.HTML())

	require.NoError(t, ed.SetLink(0, strPtr("")))
	assert.Equal(t, "<p>Read more</p>", ed.HTML())
}

func TestEditor_SetLinkDropsUnsafeSchemes(t *testing.T) {
	ed, _ := newEditor("<p>Click</p>")
	require.NoError(t, ed.SetLink(0, strPtr("javascript:alert(1)")))
	assert.Equal(t, "<p>Click</p>", ed.HTML())
}

func TestEditor_ReadOnly(t *testing.T) {
	ed, rec := newEditor("<p>Hello</p>")
	require.NoError(t, ed.SetHTML("<p>Typed</p>"))

	ed.SetEditMode(false)
	assert.ErrorIs(t, ed.Bold(0), ErrReadOnly)
	assert.ErrorIs(t, ed.SetHTML("<p>x</p>"), ErrReadOnly)
	assert.ErrorIs(t, ed.SetLink(0, nil), ErrReadOnly)
	assert.Equal(t, "<p>Typed</p>", ed.HTML(), "leaving edit mode keeps content")
	assert.Len(t, rec.calls, 1)
}

func TestEditor_NoSuchBlock(t *testing.T) {
	ed, rec := newEditor("<p>Hello</p>")
	assert.ErrorIs(t, ed.Bold(3), ErrNoSuchBlock)
	assert.ErrorIs(t, ed.Bold(-1), ErrNoSuchBlock)
	assert.Empty(t, rec.calls)
}

func TestEditor_Exec(t *testing.T) {
	ed, _ := newEditor("<p>Hello</p>")

	require.NoError(t, ed.Exec(Command{Name: CmdBulletList}))
	assert.Equal(t, "<ul><li>Hello</li></ul>", ed.HTML())

	require.NoError(t, ed.Exec(Command{Name: CmdSetHTML, HTML: "<h2>Title</h2>"}))
	assert.Equal(t, "<h2>Title</h2>", ed.HTML())

	assert.ErrorIs(t, ed.Exec(Command{Name: "strike"}), ErrUnknownCommand)
}

func TestEditor_Render(t *testing.T) {
	ed, _ := newEditor(`<p onclick="evil()">Hello</p><script>alert(1)</script>`)

	editable := string(ed.Render())
	assert.Contains(t, editable, `contenteditable="true"`)
	assert.Contains(t, editable, `data-command="bold"`)
	assert.NotContains(t, editable, "script")

	ed.SetEditMode(false)
	assert.Equal(t, "<p>Hello</p>", string(ed.Render()))
}

func TestEditor_RenderBindsRegion(t *testing.T) {
	ed, _ := newEditor(`<p>Hello</p>`)
	ed.Bind(`data-section="intro" data-field="body"`)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(ed.Render())))
	require.NoError(t, err)
	region := doc.Find(".editable-text")
	require.Equal(t, 1, region.Length())
	assert.Equal(t, "intro", region.AttrOr("data-section", ""))
	assert.Equal(t, "body", region.AttrOr("data-field", ""))

	ed.SetEditMode(false)
	assert.Equal(t, "<p>Hello</p>", string(ed.Render()))
}

func TestMarkdownToHTML(t *testing.T) {
	out, err := MarkdownToHTML("# Title\n\nSome **bold** text.\n\n<script>x()</script>")
	require.NoError(t, err)
	assert.Contains(t, string(out), "<h1")
	assert.Contains(t, string(out), "<strong>bold</strong>")
	assert.NotContains(t, string(out), "<script>")
}
