// Package richtext is the server side of the inline rich-text editor: it holds an HTML
// fragment, applies toolbar commands to it and serialises the result through a strict
// sanitising policy.
package richtext

import (
	"errors"
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
)

var (
	// ErrReadOnly is returned for commands issued while edit mode is off.
	ErrReadOnly = errors.New("richtext: editor is read-only")
	// ErrNoSuchBlock is returned when a command targets a block index that does not exist.
	ErrNoSuchBlock = errors.New("richtext: no such block")
	// ErrUnknownCommand is returned by Exec for an unrecognised command name.
	ErrUnknownCommand = errors.New("richtext: unknown command")
	// ErrBadAlignment is returned for an alignment other than left, center or right.
	ErrBadAlignment = errors.New("richtext: unsupported alignment")
)

// Alignment is a text-align value the toolbar offers.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Command names accepted by Exec.
const (
	CmdBold         = "bold"
	CmdItalic       = "italic"
	CmdUnderline    = "underline"
	CmdAlign        = "align"
	CmdBulletList   = "bullet-list"
	CmdNumberedList = "numbered-list"
	CmdLink         = "link"
	CmdSetHTML      = "set-html"
)

// Command is one toolbar action. Block is the index of the top-level block it targets.
// URL is only read by CmdLink: nil means the prompt was cancelled, empty removes links.
type Command struct {
	Name  string    `json:"name" binding:"required"`
	Block int       `json:"block"`
	Align Alignment `json:"align,omitempty"`
	URL   *string   `json:"url,omitempty"`
	HTML  string    `json:"html,omitempty"`
}

var standaloneBlocks = map[string]bool{
	"p": true, "div": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "ul": true, "ol": true, "pre": true, "table": true, "figure": true, "hr": true,
}

// Editor holds one editable HTML fragment.
type Editor struct {
	mu       sync.Mutex
	html     string
	editMode bool
	onChange func(string)
	attrs    template.HTMLAttr
}

// New creates an Editor. onChange receives the serialised HTML after every mutation.
func New(html string, editMode bool, onChange func(string)) *Editor {
	return &Editor{html: html, editMode: editMode, onChange: onChange}
}

// HTML returns the current content, sanitised.
func (e *Editor) HTML() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Sanitize(e.html)
}

func (e *Editor) EditMode() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.editMode
}

// SetEditMode toggles editing. Content is kept either way.
func (e *Editor) SetEditMode(on bool) {
	e.mu.Lock()
	e.editMode = on
	e.mu.Unlock()
}

// Bind sets extra attributes for the editable region, naming where its content is
// stored. They are only rendered in edit mode.
func (e *Editor) Bind(attrs template.HTMLAttr) *Editor {
	e.mu.Lock()
	e.attrs = attrs
	e.mu.Unlock()
	return e
}

// Render returns the content for a page: plain sanitised HTML when read-only, or the
// content inside a contenteditable region with the formatting toolbar.
func (e *Editor) Render() template.HTML {
	e.mu.Lock()
	content, editable, attrs := Sanitize(e.html), e.editMode, e.attrs
	e.mu.Unlock()

	if !editable {
		return template.HTML(content)
	}
	if attrs != "" {
		attrs = " " + attrs
	}
	return template.HTML(`<div class="editable-text" data-editable="true"` + string(attrs) + `>` + toolbarHTML +
		`<div class="editable-text__content" contenteditable="true">` + content + `</div></div>`)
}

// SetHTML replaces the whole content, as typing in the region does.
func (e *Editor) SetHTML(html string) error {
	return e.mutate(func(body *goquery.Selection) error {
		body.SetHtml(html)
		return nil
	})
}

func (e *Editor) Bold(block int) error      { return e.toggleInline(block, "strong") }
func (e *Editor) Italic(block int) error    { return e.toggleInline(block, "em") }
func (e *Editor) Underline(block int) error { return e.toggleInline(block, "u") }

// Align sets the text alignment of a block.
func (e *Editor) Align(block int, align Alignment) error {
	switch align {
	case AlignLeft, AlignCenter, AlignRight:
	default:
		return fmt.Errorf("%w: %q", ErrBadAlignment, align)
	}
	return e.mutateBlock(block, func(sel *goquery.Selection) error {
		sel.SetAttr("style", "text-align: "+string(align))
		return nil
	})
}

// BulletList turns a block into an unordered list, or back into paragraphs when it
// already is one.
func (e *Editor) BulletList(block int) error { return e.toggleList(block, "ul") }

// NumberedList turns a block into an ordered list, or back into paragraphs when it
// already is one.
func (e *Editor) NumberedList(block int) error { return e.toggleList(block, "ol") }

// SetLink links the contents of a block to url. A nil url is a cancelled prompt and
// changes nothing; an empty url removes the links in the block.
func (e *Editor) SetLink(block int, url *string) error {
	if url == nil {
		e.mu.Lock()
		defer e.mu.Unlock()
		if !e.editMode {
			return ErrReadOnly
		}
		return nil
	}

	target := strings.TrimSpace(*url)
	return e.mutateBlock(block, func(sel *goquery.Selection) error {
		anchors := sel.Find("a")
		if target == "" {
			anchors.Each(func(_ int, a *goquery.Selection) {
				unwrapElement(a)
			})
			return nil
		}
		if anchors.Length() > 0 {
			anchors.SetAttr("href", target)
			return nil
		}
		for _, t := range inlineTargets(sel) {
			t.WrapInnerHtml(`<a href="` + template.HTMLEscapeString(target) + `"></a>`)
		}
		return nil
	})
}

// Exec dispatches a Command.
func (e *Editor) Exec(cmd Command) error {
	switch cmd.Name {
	case CmdBold:
		return e.Bold(cmd.Block)
	case CmdItalic:
		return e.Italic(cmd.Block)
	case CmdUnderline:
		return e.Underline(cmd.Block)
	case CmdAlign:
		return e.Align(cmd.Block, cmd.Align)
	case CmdBulletList:
		return e.BulletList(cmd.Block)
	case CmdNumberedList:
		return e.NumberedList(cmd.Block)
	case CmdLink:
		return e.SetLink(cmd.Block, cmd.URL)
	case CmdSetHTML:
		return e.SetHTML(cmd.HTML)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Name)
	}
}

func (e *Editor) toggleInline(block int, tag string) error {
	return e.mutateBlock(block, func(sel *goquery.Selection) error {
		for _, t := range inlineTargets(sel) {
			contents := t.Contents()
			if contents.Length() == 1 && goquery.NodeName(contents) == tag {
				unwrapElement(contents)
				continue
			}
			t.WrapInnerHtml("<" + tag + "></" + tag + ">")
		}
		return nil
	})
}

func (e *Editor) toggleList(block int, tag string) error {
	return e.mutateBlock(block, func(sel *goquery.Selection) error {
		name := goquery.NodeName(sel)
		var b strings.Builder

		switch name {
		case tag:
			sel.Children().Each(func(_ int, li *goquery.Selection) {
				inner, _ := li.Html()
				b.WriteString("<p>" + inner + "</p>")
			})
		case "ul", "ol":
			inner, _ := sel.Html()
			b.WriteString("<" + tag + ">" + inner + "</" + tag + ">")
		default:
			inner, _ := sel.Html()
			b.WriteString("<" + tag + "><li>" + inner + "</li></" + tag + ">")
		}

		sel.ReplaceWithHtml(b.String())
		return nil
	})
}

func (e *Editor) mutateBlock(block int, fn func(sel *goquery.Selection) error) error {
	return e.mutate(func(body *goquery.Selection) error {
		blocks := body.Children()
		if block < 0 || block >= blocks.Length() {
			return fmt.Errorf("%w: %d of %d", ErrNoSuchBlock, block, blocks.Length())
		}
		return fn(blocks.Eq(block))
	})
}

func (e *Editor) mutate(fn func(body *goquery.Selection) error) error {
	e.mu.Lock()
	if !e.editMode {
		e.mu.Unlock()
		return ErrReadOnly
	}

	body, err := parseBlocks(e.html)
	if err != nil {
		e.mu.Unlock()
		return err
	}
	if err := fn(body); err != nil {
		e.mu.Unlock()
		return err
	}
	out, err := body.Html()
	if err != nil {
		e.mu.Unlock()
		return fmt.Errorf("serialise content: %w", err)
	}

	e.html = Sanitize(out)
	html, onChange := e.html, e.onChange
	e.mu.Unlock()

	if onChange != nil {
		onChange(html)
	}
	return nil
}

// parseBlocks parses a fragment and wraps runs of loose inline content in paragraphs so
// that every top-level node is a block.
func parseBlocks(src string) (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	body := doc.Find("body")
	contents := body.Contents()

	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		run := contents.Slice(start, end)
		if hasContent(run) {
			run.WrapAllHtml("<p></p>")
		}
		start = -1
	}
	contents.Each(func(i int, node *goquery.Selection) {
		if standaloneBlocks[goquery.NodeName(node)] {
			flush(i)
			return
		}
		if start < 0 {
			start = i
		}
	})
	flush(contents.Length())

	return body, nil
}

func hasContent(run *goquery.Selection) bool {
	found := false
	run.EachWithBreak(func(_ int, node *goquery.Selection) bool {
		if goquery.NodeName(node) != "#text" || strings.TrimSpace(node.Text()) != "" {
			found = true
		}
		return !found
	})
	return found
}

// inlineTargets returns the elements whose contents inline formatting wraps: the list
// items of a list, otherwise the block itself.
func inlineTargets(block *goquery.Selection) []*goquery.Selection {
	switch goquery.NodeName(block) {
	case "ul", "ol":
		var items []*goquery.Selection
		block.Children().Each(func(_ int, li *goquery.Selection) {
			items = append(items, li)
		})
		return items
	default:
		return []*goquery.Selection{block}
	}
}

// unwrapElement replaces each element in sel with its children.
func unwrapElement(sel *goquery.Selection) {
	sel.Each(func(_ int, el *goquery.Selection) {
		if children := el.Contents(); children.Length() > 0 {
			children.Unwrap()
			return
		}
		el.Remove()
	})
}

const toolbarHTML = `<div class="editable-text__toolbar" role="toolbar" hidden>` +
	`<button type="button" data-command="bold"><strong>B</strong></button>` +
	`<button type="button" data-command="italic"><em>I</em></button>` +
	`<button type="button" data-command="underline"><u>U</u></button>` +
	`<button type="button" data-command="align" data-align="left">Left</button>` +
	`<button type="button" data-command="align" data-align="center">Center</button>` +
	`<button type="button" data-command="align" data-align="right">Right</button>` +
	`<button type="button" data-command="bullet-list">&bull; List</button>` +
	`<button type="button" data-command="numbered-list">1. List</button>` +
	`<button type="button" data-command="link">Link</button>` +
	`</div>`
