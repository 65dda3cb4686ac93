package ports

import (
	"context"

	"github.com/safegate/gate-api/internal/core/domain"
)

// GateService validates and records gate commands and exposes the bounded
// read views over the audit trail.
type GateService interface {
	// Submit records one gate command for the acting user and returns the
	// created row id.
	Submit(ctx context.Context, userID int64, acao, descricao string) (int64, error)
	History(ctx context.Context) ([]domain.HistoryEntry, error)
	SystemLogs(ctx context.Context) ([]domain.SystemLog, error)
	Delete(ctx context.Context, id int64) error
}
