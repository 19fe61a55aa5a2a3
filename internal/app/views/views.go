// Package views renders the public pages from embedded html/template files.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/yigit/forensicsite/internal/pkg/imageupload"
	"github.com/yigit/forensicsite/internal/pkg/richtext"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const layoutFile = "templates/layout.html"

// Page is what every page template receives.
type Page struct {
	Title    string
	Realm    string
	EditMode bool
	Nav      []NavLink
	Data     any
	Extra    any

	Categories   []string
	ActiveFilter string
}

// NavLink is one entry of the site navigation.
type NavLink struct {
	Label  string
	Href   string
	Active bool
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the layout together with every page template.
func New() (*Renderer, error) {
	layout, err := template.New("layout.html").Funcs(funcs()).ParseFS(templateFS, layoutFile)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, file := range files {
		if file == layoutFile {
			continue
		}
		t, err := template.Must(layout.Clone()).ParseFS(templateFS, file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		r.pages[strings.TrimSuffix(path.Base(file), ".html")] = t
	}
	return r, nil
}

// Has reports whether a page template exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// Render writes page name. Output is buffered so a template error never leaves a
// half-written page behind.
func (r *Renderer) Render(w io.Writer, name string, page Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("views: no page %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", page); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"text": func(html string, editMode bool, bind ...any) template.HTML {
			return richtext.New(html, editMode, nil).Bind(bindAttrs(bind)).Render()
		},
		"image": func(src, alt string, editMode bool, bind ...any) template.HTML {
			return imageupload.NewEditable(src, alt, editMode, nil, nil).Bind(bindAttrs(bind)).Render()
		},
		"markdown": func(src string) template.HTML {
			html, err := richtext.MarkdownToHTML(src)
			if err != nil {
				return ""
			}
			return html
		},
		"safeHTML": func(s string) template.HTML {
			return template.HTML(richtext.Sanitize(s))
		},
	}
}

var bindNames = []string{"data-section", "data-field", "data-id"}

// bindAttrs turns the trailing section, field and item id arguments of text and image
// into the attributes the page editor script writes back through.
func bindAttrs(values []any) template.HTMLAttr {
	var b strings.Builder
	for i, v := range values {
		if i >= len(bindNames) {
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, `%s="%s"`, bindNames[i], template.HTMLEscapeString(fmt.Sprint(v)))
	}
	return template.HTMLAttr(b.String())
}

// Static returns the stylesheet, editor script and seed images served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
