package views

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/forensicsite/internal/app/content"
	"github.com/yigit/forensicsite/internal/app/models"
)

func render(t *testing.T, name string, page Page) *goquery.Document {
	t.Helper()
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, name, page))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestNew_ParsesEveryPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	for _, name := range []string{"home", "events", "courses", "faculty", "achievements", "blog", "post"} {
		assert.True(t, r.Has(name), name)
	}
	assert.False(t, r.Has("layout"))
	assert.Error(t, r.Render(&bytes.Buffer{}, "missing", Page{}))
}

func TestRender_EditModeShowsEditors(t *testing.T) {
	data := content.DefaultFaculty()
	page := Page{Title: "Faculty", Realm: content.RealmFaculty, Data: data, Extra: data.Members, ActiveFilter: "All", Categories: data.Categories}

	doc := render(t, "faculty", page)
	assert.Equal(t, "Edit", doc.Find(".edit-control button").Text())
	assert.Zero(t, doc.Find(`[data-editable="true"]`).Length())
	assert.Contains(t, doc.Find("title").Text(), "Faculty")

	page.EditMode = true
	doc = render(t, "faculty", page)
	assert.Equal(t, "Save", doc.Find(".edit-control button").Text())
	assert.True(t, doc.Find("body").HasClass("is-editing"))
	assert.Positive(t, doc.Find(".editable-text").Length())
	assert.Positive(t, doc.Find(".editable-image").Length())
}

func TestRender_CoursesEmptyState(t *testing.T) {
	data := content.DefaultCourses()

	doc := render(t, "courses", Page{Title: "Courses", Realm: content.RealmCourses, Data: data, Extra: []models.CatalogCourse{}})
	assert.Equal(t, "No courses available", strings.TrimSpace(doc.Find("section.courses .empty").Text()))

	doc = render(t, "courses", Page{Title: "Courses", Realm: content.RealmCourses, Data: data,
		Extra: []models.CatalogCourse{{ID: 1, Title: "Fingerprint Analysis", Level: "Beginner"}}})
	assert.Zero(t, doc.Find("section.courses .empty").Length())
	assert.Equal(t, "Fingerprint Analysis", doc.Find("section.courses h3").Text())
}

func TestRender_StripsScriptsFromRichText(t *testing.T) {
	data := content.DefaultFaculty()
	data.Intro.Body = `<p>Hi</p><script>alert(1)</script>`

	doc := render(t, "faculty", Page{Title: "Faculty", Realm: content.RealmFaculty, Data: data})
	assert.Zero(t, doc.Find("main script").Length())
	assert.Equal(t, "Hi", doc.Find(`[data-section="intro"] p`).First().Text())
}

func TestRender_PostNotFound(t *testing.T) {
	doc := render(t, "post", Page{Title: "Blog"})
	assert.Equal(t, "Post not found", strings.TrimSpace(doc.Find("p.empty").Text()))
	assert.Zero(t, doc.Find(".edit-control").Length())
}

func TestRender_EditableRegionsCarryBindings(t *testing.T) {
	data := content.DefaultFaculty()
	page := Page{Title: "Faculty", Realm: content.RealmFaculty, Data: data, Extra: data.Members, ActiveFilter: "All", Categories: data.Categories, EditMode: true}

	doc := render(t, "faculty", page)
	assert.Equal(t, 1, doc.Find(`.editable-text[data-section="intro"][data-field="body"]`).Length())
	assert.Equal(t, 1, doc.Find(`.editable-image[data-section="hero"][data-field="image"]`).Length())

	member := doc.Find(`.editable-image[data-section="members"][data-id="1"]`)
	require.Equal(t, 1, member.Length())
	assert.Equal(t, "image", member.AttrOr("data-field", ""))
	assert.Equal(t, 1, member.Find(`input[type="file"][data-upload="image"]`).Length())

	assert.Equal(t, 1, doc.Find(`dialog#save-dialog input[name="password"]`).Length())
	assert.Equal(t, 1, doc.Find(`dialog#login-dialog input[name="username"]`).Length())
	assert.Equal(t, "/static/editor.js", doc.Find("script").AttrOr("src", ""))
}

func TestBindAttrs_EscapesValues(t *testing.T) {
	assert.Equal(t, `data-section="intro" data-field="body"`, string(bindAttrs([]any{"intro", "body"})))
	assert.Equal(t, `data-section="a&#34;b" data-field="f" data-id="7"`, string(bindAttrs([]any{`a"b`, "f", 7, "extra"})))
	assert.Empty(t, string(bindAttrs(nil)))
}

func TestStatic_ShipsAssets(t *testing.T) {
	static := Static()
	for _, name := range []string{"editor.js", "site.css", "img/faculty-hero.svg", "img/faculty/rao.svg"} {
		info, err := fs.Stat(static, name)
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}

	script, err := fs.ReadFile(static, "editor.js")
	require.NoError(t, err)
	for _, endpoint := range []string{"/edit", "/save/request", "/save/confirm", "/save/cancel", "/sections/", "/media/images", "/media/format"} {
		assert.Contains(t, string(script), endpoint)
	}
}

func TestStatic_SeedImagesExist(t *testing.T) {
	static := Static()
	for _, src := range []string{
		content.DefaultFaculty().Hero.Image,
		content.DefaultFaculty().Members[0].Image,
		content.DefaultCourses().Hero.Image,
	} {
		require.True(t, strings.HasPrefix(src, "/static/"), src)
		_, err := fs.Stat(static, strings.TrimPrefix(src, "/static/"))
		assert.NoError(t, err, src)
	}
}
