package domain

import "time"

// Gate actions accepted by the controller, as sent on the wire.
const (
	ActionOpen  = "abrir"
	ActionClose = "fechar"
	ActionStop  = "parar"
)

// ValidAction reports whether acao is one of the permitted gate commands.
func ValidAction(acao string) bool {
	switch acao {
	case ActionOpen, ActionClose, ActionStop:
		return true
	}
	return false
}

// DefaultDescription is the description recorded when the caller omits one.
func DefaultDescription(acao string) string {
	return "Portão " + acao
}

// GateAction is one audited gate command: who asked for what, and when.
// Immutable once recorded except for explicit delete-by-id.
type GateAction struct {
	ID          int64     `json:"id_registro"`
	Description string    `json:"descricao"`
	PerformedAt time.Time `json:"dt_acao"`
	UserID      int64     `json:"id_usuario"`
}

// HistoryEntry is a GateAction joined with its actor for the history view.
type HistoryEntry struct {
	GateAction
	UserName string `json:"nome"`
	UserRole string `json:"tipo_usuario"`
}

// SystemLog is a row written by the database's own triggers. The backend
// only ever reads these; there is no write path through the API.
type SystemLog struct {
	ID          int64     `json:"id_log"`
	Description string    `json:"descricao"`
	TriggeredAt time.Time `json:"dt_trigger"`
}
