package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/safegate/gate-api/internal/core/domain"
	"github.com/safegate/gate-api/internal/core/ports"
)

// GateRepository implements ports.GateRepository over the registros and log
// tables. The log table is populated by database triggers; only reads here.
type GateRepository struct {
	db *sql.DB
}

var _ ports.GateRepository = (*GateRepository)(nil)

func NewGateRepository(db *sql.DB) *GateRepository {
	return &GateRepository{db: db}
}

func (r *GateRepository) InsertAction(ctx context.Context, userID int64, description string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		insert into registros (descricao, id_usuario)
		values ($1, $2)
		returning id_registro
	`, description, userID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert action: %w", err)
	}
	return id, nil
}

func (r *GateRepository) History(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		select r.id_registro, r.descricao, r.dt_acao, r.id_usuario, u.nome, u.tipo_usuario
		from registros r
		join usuarios u on r.id_usuario = u.id_usuario
		order by r.dt_acao desc
		limit $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.HistoryEntry, 0, limit)
	for rows.Next() {
		var e domain.HistoryEntry
		if err := rows.Scan(&e.ID, &e.Description, &e.PerformedAt, &e.UserID, &e.UserName, &e.UserRole); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return entries, nil
}

func (r *GateRepository) SystemLogs(ctx context.Context, limit int) ([]domain.SystemLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		select id_log, descricao, dt_trigger
		from log
		order by dt_trigger desc
		limit $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("system logs: %w", err)
	}
	defer rows.Close()

	logs := make([]domain.SystemLog, 0, limit)
	for rows.Next() {
		var l domain.SystemLog
		if err := rows.Scan(&l.ID, &l.Description, &l.TriggeredAt); err != nil {
			return nil, fmt.Errorf("scan log row: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("system logs: %w", err)
	}
	return logs, nil
}

func (r *GateRepository) ActionExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`select exists (select 1 from registros where id_registro = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("action exists: %w", err)
	}
	return exists, nil
}

func (r *GateRepository) DeleteAction(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `delete from registros where id_registro = $1`, id); err != nil {
		return fmt.Errorf("delete action: %w", err)
	}
	return nil
}
