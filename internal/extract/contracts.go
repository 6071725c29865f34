package extract

import (
	"context"

	"github.com/wegtools/minutes-tracker/internal/entity"
)

// TextExtractor is one raw-text-extraction strategy: document -> pages.
// Implementations normalize page text before returning it.
type TextExtractor interface {
	Extract(ctx context.Context, path string) ([]entity.Page, error)
}
