package pdfreader

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tsawler/tabula"
	"github.com/tsawler/tabula/reader"

	"AuditScanner/internal/domain"
	"AuditScanner/internal/ports"
)

// Source renders an uploaded report into positioned fragments via tabula.
type Source struct {
	logger *slog.Logger
}

var _ ports.DocumentSource = (*Source)(nil)

// New builds the PDF document source.
func New(logger *slog.Logger) *Source {
	return &Source{logger: logger}
}

// ReadDocument opens the report and collects each page's text fragments in
// page order. Page retrievals are independent steps; later boundary detection
// depends on reading order, so pages are concatenated in order, never
// interleaved. Any page failure fails the whole upload and no retry is made.
func (s *Source) ReadDocument(ctx context.Context, path string) (domain.DocumentText, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.DocumentText{}, fmt.Errorf("read file: %w", err)
	}
	sum := sha256.Sum256(raw)

	doc := domain.DocumentText{
		Meta: domain.DocumentMeta{
			FileName:    filepath.Base(path),
			ContentHash: hex.EncodeToString(sum[:]),
		},
	}

	r, err := reader.Open(path)
	if err != nil {
		return domain.DocumentText{}, fmt.Errorf("open document: %w", err)
	}
	defer r.Close()

	ext := tabula.FromReader(r)
	count, err := ext.PageCount()
	if err != nil {
		return domain.DocumentText{}, fmt.Errorf("page count: %w", err)
	}

	for page := 1; page <= count; page++ {
		if err := ctx.Err(); err != nil {
			return domain.DocumentText{}, err
		}

		fragments, warnings, err := ext.Pages(page).Fragments()
		if err != nil {
			return domain.DocumentText{}, fmt.Errorf("page %d: %w", page, err)
		}
		if len(warnings) > 0 && s.logger != nil {
			s.logger.Debug("page extraction warnings", "page", page, "count", len(warnings))
		}

		converted := make([]domain.Fragment, 0, len(fragments))
		for _, frag := range fragments {
			converted = append(converted, domain.Fragment{
				Text: frag.Text,
				X:    frag.X,
				Y:    frag.Y,
			})
		}
		doc.Pages = append(doc.Pages, converted)
	}

	return doc, nil
}
