package pages

import (
	"fmt"
	"os"
	"strings"

	"github.com/dslipak/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pcmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Document is an open plan PDF. One file handle is shared by the validator
// and the content reader; Close releases it. A Document is read-only and
// safe for sequential page iteration.
type Document struct {
	path   string
	file   *os.File
	ctx    *pcmodel.Context
	reader *pdf.Reader
	dims   []types.Dim
}

// Open opens and validates a PDF. The returned Document must be closed; on
// error the file handle has already been released.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	conf := pcmodel.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("validating pdf: %w", err)
	}

	dims, err := ctx.PageDims()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading page dimensions: %w", err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	reader, err := pdf.NewReader(f, fi.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening pdf content: %w", err)
	}

	return &Document{
		path:   path,
		file:   f,
		ctx:    ctx,
		reader: reader,
		dims:   dims,
	}, nil
}

// Path returns the path the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.ctx.PageCount
}

// PageSize returns the width and height in points of the 1-based page.
func (d *Document) PageSize(number int) (width, height float64) {
	if number < 1 || number > len(d.dims) {
		return 0, 0
	}
	dim := d.dims[number-1]
	return dim.Width, dim.Height
}

// Page extracts the content of the 1-based page. The underlying content
// reader panics on malformed page streams; those panics are converted to
// errors so a bad page can be skipped without losing the document.
func (d *Document) Page(number int) (content *Content, err error) {
	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = fmt.Errorf("page %d: content extraction failed: %v", number, r)
		}
	}()

	if number < 1 || number > d.PageCount() {
		return nil, fmt.Errorf("page %d out of range (1-%d)", number, d.PageCount())
	}

	width, height := d.PageSize(number)
	content = &Content{Number: number, Width: width, Height: height}

	p := d.reader.Page(number)
	if p.V.IsNull() {
		return content, nil
	}

	ct := p.Content()
	for _, t := range ct.Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		content.Fragments = append(content.Fragments, Fragment{
			Text:     t.S,
			X:        t.X,
			Y:        t.Y,
			W:        t.W,
			FontSize: t.FontSize,
		})
	}
	for _, r := range ct.Rect {
		content.Rects = append(content.Rects, Rect{
			MinX: r.Min.X,
			MinY: r.Min.Y,
			MaxX: r.Max.X,
			MaxY: r.Max.Y,
		})
	}
	return content, nil
}

// Close releases the document's file handle. It is safe to call Close more
// than once.
func (d *Document) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}
