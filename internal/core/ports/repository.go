package ports

import (
	"context"

	"github.com/ewilliams-labs/vibeflow/internal/core/domain"
)

// HistoryRepository stores playlists after they were materialized on the
// catalog service.
type HistoryRepository interface {
	Save(ctx context.Context, result domain.PlaylistResult) error
	GetByID(ctx context.Context, id string) (domain.PlaylistResult, error)
	Recent(ctx context.Context, n int) ([]domain.PlaylistResult, error)
}
