package optimistic

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind names the mutation shape; used in errors, logs and metrics
type Kind string

const (
	KindUpdate  Kind = "update"
	KindInsert  Kind = "insert"
	KindDelete  Kind = "delete"
	KindRestore Kind = "restore" // undo of a confirmed delete
	KindDiscard Kind = "discard" // undo of a confirmed insert
)

// verb используется в сообщениях для пользователя
func (k Kind) verb() string {
	switch k {
	case KindInsert:
		return "create"
	case KindDiscard:
		return "remove"
	default:
		return string(k)
	}
}

// Outcome is the final state of a mutation
type Outcome int

const (
	OutcomePending  Outcome = iota // remote call in flight, optimistic value visible
	OutcomeSettled                 // remote store confirmed
	OutcomeReverted                // remote store failed, local state restored
	OutcomeSkipped                 // target not present locally, nothing done
	OutcomeRejected                // refused before any mutation (auth, invalid intent)
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeSettled:
		return "settled"
	case OutcomeReverted:
		return "reverted"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeRejected:
		return "rejected"
	}
	return "unknown"
}

// History actions passed to HistoryLogger
const (
	ActionCreate  = "create"
	ActionDelete  = "delete"
	ActionRestore = "restore"
	ActionDiscard = "discard"
)

// UpdateIntent describes an in-place change of an existing entity.
// Transform must be pure and keep the identifier.
type UpdateIntent[T Entity] struct {
	Transform func(current T) T
	Commit    func(ctx context.Context, next T) error
	ID        string
	Label     string // человекочитаемое имя записи для сообщений ("room 205")
}

// InsertIntent describes the creation of a new entity.
// Placeholder must carry a locally generated id (see NewLocalID).
type InsertIntent[T Entity] struct {
	Placeholder T
	Create      func(ctx context.Context, placeholder T) (T, error)
	// Discard removes the created entity remotely when the insert is undone.
	// nil makes the undo local only.
	Discard func(ctx context.Context, created T) error
	ActorID string
	Label   string
}

// DeleteIntent describes the removal of an existing entity
type DeleteIntent[T Entity] struct {
	Delete func(ctx context.Context, entity T) error
	// Restore brings the entity back remotely when the delete is undone.
	// nil makes the undo local only.
	Restore func(ctx context.Context, entity T) error
	ActorID string
	ID      string
	Label   string
}

// LocalIDPrefix marks identifiers that were never persisted remotely
const LocalIDPrefix = "local-"

// NewLocalID generates an identifier for a placeholder entity
func NewLocalID() string {
	return LocalIDPrefix + uuid.New().String()
}

// IsLocalID reports whether id belongs to a placeholder
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, LocalIDPrefix)
}

// Recorder receives mutation outcomes, e.g. for Prometheus
type Recorder interface {
	ObserveMutation(kind Kind, outcome Outcome, elapsed time.Duration)
	ObserveUndo(kind Kind)
}

// NopRecorder discards all observations
type NopRecorder struct{}

func (NopRecorder) ObserveMutation(Kind, Outcome, time.Duration) {}
func (NopRecorder) ObserveUndo(Kind)                            {}

// HistoryLogger records who did what to which entity.
// Failures are logged by the coordinator and otherwise ignored.
type HistoryLogger interface {
	RecordHistory(ctx context.Context, actorID, entityID, action string) error
}
