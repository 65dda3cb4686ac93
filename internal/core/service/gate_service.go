package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/safegate/gate-api/internal/core/domain"
	"github.com/safegate/gate-api/internal/core/ports"
)

// Read views are bounded; there is no pagination cursor.
const (
	historyLimit    = 50
	systemLogsLimit = 100
)

// GateService validates and records gate commands against the identity
// extracted from the caller's token.
type GateService struct {
	repo ports.GateRepository
	log  zerolog.Logger
}

func NewGateService(repo ports.GateRepository, log zerolog.Logger) *GateService {
	return &GateService{repo: repo, log: log}
}

func (s *GateService) Submit(ctx context.Context, userID int64, acao, descricao string) (int64, error) {
	if !domain.ValidAction(acao) {
		return 0, domain.ErrInvalidAction
	}
	if descricao == "" {
		descricao = domain.DefaultDescription(acao)
	}

	id, err := s.repo.InsertAction(ctx, userID, descricao)
	if err != nil {
		return 0, err
	}

	s.log.Info().
		Int64("user_id", userID).
		Str("acao", acao).
		Int64("registro_id", id).
		Msg("gate action recorded")
	return id, nil
}

func (s *GateService) History(ctx context.Context) ([]domain.HistoryEntry, error) {
	return s.repo.History(ctx, historyLimit)
}

func (s *GateService) SystemLogs(ctx context.Context) ([]domain.SystemLog, error) {
	return s.repo.SystemLogs(ctx, systemLogsLimit)
}

// Delete removes one audit row after confirming it exists, so a missing id
// reports ErrActionNotFound instead of silently succeeding.
func (s *GateService) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.ActionExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrActionNotFound
	}

	if err := s.repo.DeleteAction(ctx, id); err != nil {
		return err
	}

	s.log.Info().Int64("registro_id", id).Msg("gate action deleted")
	return nil
}
