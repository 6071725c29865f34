package extract

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/wegtools/minutes-tracker/internal/entity"
	"github.com/wegtools/minutes-tracker/internal/textutil"
)

// PlainExtractor reads embedded PDF text in-process. It is the cheap first
// strategy; scanned documents typically yield near-empty pages here.
type PlainExtractor struct{}

func NewPlainExtractor() *PlainExtractor {
	return &PlainExtractor{}
}

func (e *PlainExtractor) Extract(_ context.Context, path string) ([]entity.Page, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	total := r.NumPage()
	pages := make([]entity.Page, 0, total)
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		raw := ""
		if !p.V.IsNull() {
			// A page that fails to decode still occupies its index slot.
			if txt, err := p.GetPlainText(nil); err == nil {
				raw = txt
			}
		}
		txt := textutil.NormalizeText(raw)
		pages = append(pages, entity.Page{
			PageIndex: i - 1,
			Text:      txt,
			CharCount: utf8.RuneCountInString(txt),
		})
	}
	return pages, nil
}
