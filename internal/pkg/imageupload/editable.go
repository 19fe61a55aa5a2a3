package imageupload

import (
	"context"
	"errors"
	"html/template"
	"io"
	"sync"
)

// ErrReadOnly is returned for uploads while edit mode is off.
var ErrReadOnly = errors.New("imageupload: image is read-only")

// Result is delivered by UploadAsync.
type Result struct {
	Image *Image
	Err   error
}

// Editable is an image whose source can be replaced while edit mode is on.
type Editable struct {
	mu       sync.Mutex
	src      string
	alt      string
	editMode bool
	onChange func(string)
	uploader *Uploader
	attrs    template.HTMLAttr
}

// NewEditable creates an Editable. onChange receives the new URI after each upload.
func NewEditable(src, alt string, editMode bool, onChange func(string), uploader *Uploader) *Editable {
	if uploader == nil {
		uploader = NewUploader(nil, 0)
	}
	return &Editable{src: src, alt: alt, editMode: editMode, onChange: onChange, uploader: uploader}
}

// Src returns the current source, including a local preview after an upload.
func (e *Editable) Src() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.src
}

func (e *Editable) EditMode() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.editMode
}

func (e *Editable) SetEditMode(on bool) {
	e.mu.Lock()
	e.editMode = on
	e.mu.Unlock()
}

// Upload encodes the file, makes it the current source and reports it through onChange.
func (e *Editable) Upload(ctx context.Context, filename string, r io.Reader) (*Image, error) {
	if !e.EditMode() {
		return nil, ErrReadOnly
	}

	img, err := e.uploader.Process(ctx, filename, r)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.src = img.URI
	onChange := e.onChange
	e.mu.Unlock()

	if onChange != nil {
		onChange(img.URI)
	}
	return img, nil
}

// UploadAsync runs Upload on its own goroutine. The channel receives exactly one Result.
func (e *Editable) UploadAsync(ctx context.Context, filename string, r io.Reader) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		img, err := e.Upload(ctx, filename, r)
		out <- Result{Image: img, Err: err}
	}()
	return out
}

// Bind sets extra attributes for the edit-mode wrapper, naming where the source is
// stored.
func (e *Editable) Bind(attrs template.HTMLAttr) *Editable {
	e.mu.Lock()
	e.attrs = attrs
	e.mu.Unlock()
	return e
}

// Render returns the image markup, with the upload affordance in edit mode.
func (e *Editable) Render() template.HTML {
	e.mu.Lock()
	src, alt, editable, attrs := e.src, e.alt, e.editMode, e.attrs
	e.mu.Unlock()

	img := `<img src="` + template.HTMLEscapeString(src) + `" alt="` + template.HTMLEscapeString(alt) + `">`
	if !editable {
		return template.HTML(img)
	}
	if attrs != "" {
		attrs = " " + attrs
	}
	return template.HTML(`<div class="editable-image" data-editable="true"` + string(attrs) + `>` + img +
		`<label class="editable-image__upload">Change image` +
		`<input type="file" accept="image/*" data-upload="image" hidden></label></div>`)
}
