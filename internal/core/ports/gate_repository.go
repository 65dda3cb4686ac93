package ports

import (
	"context"

	"github.com/safegate/gate-api/internal/core/domain"
)

// GateRepository defines persistence for the audited command trail.
type GateRepository interface {
	// InsertAction records one gate command and returns the new row id.
	InsertAction(ctx context.Context, userID int64, description string) (int64, error)
	// History returns the newest actions joined with actor name/role,
	// newest first, at most limit rows.
	History(ctx context.Context, limit int) ([]domain.HistoryEntry, error)
	// SystemLogs returns trigger-produced log rows, newest first.
	SystemLogs(ctx context.Context, limit int) ([]domain.SystemLog, error)
	// ActionExists reports whether a GateAction with the given id is stored.
	ActionExists(ctx context.Context, id int64) (bool, error)
	DeleteAction(ctx context.Context, id int64) error
}
