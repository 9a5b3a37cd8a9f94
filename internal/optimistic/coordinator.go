package optimistic

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	// DefaultUndoWindow how long an insert/delete can be undone
	DefaultUndoWindow = 3 * time.Second
	// DefaultToastWindow how long a success message stays visible
	DefaultToastWindow = 2 * time.Second
)

// Config holds the coordinator's collaborators. Zero values get defaults.
type Config struct {
	Clock       clockwork.Clock
	Logger      *slog.Logger
	History     HistoryLogger
	Recorder    Recorder
	UndoWindow  time.Duration
	ToastWindow time.Duration
}

// Alert is the dismissible failure message pair
type Alert struct {
	Message string
	Show    bool
}

// Toast is the transient success message for create/delete
type Toast struct {
	Message string
	Show    bool
}

// Coordinator applies mutations to a local collection immediately and
// reverts them if the remote record store rejects the write.
//
// Local steps are serialised by the collection's lock; remote calls run in
// their own goroutines and are never cancelled by the caller's context.
// Concurrent mutations of the same id revert in best-effort order.
type Coordinator[T Entity] struct {
	items       *Collection[T]
	clock       clockwork.Clock
	logger      *slog.Logger
	history     HistoryLogger
	recorder    Recorder
	undo        *Undo
	alert       Alert
	toast       Toast
	inflight    inflight
	undoWindow  time.Duration
	toastWindow time.Duration
	toastSeq    uint64
	mu          sync.Mutex
}

// New creates a coordinator over an empty collection
func New[T Entity](cfg Config) *Coordinator[T] {
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Recorder == nil {
		cfg.Recorder = NopRecorder{}
	}
	if cfg.UndoWindow <= 0 {
		cfg.UndoWindow = DefaultUndoWindow
	}
	if cfg.ToastWindow <= 0 {
		cfg.ToastWindow = DefaultToastWindow
	}

	return &Coordinator[T]{
		items:       NewCollection[T](),
		clock:       cfg.Clock,
		logger:      cfg.Logger,
		history:     cfg.History,
		recorder:    cfg.Recorder,
		undoWindow:  cfg.UndoWindow,
		toastWindow: cfg.ToastWindow,
	}
}

// Items returns the current local state in display order
func (c *Coordinator[T]) Items() []T {
	return c.items.Snapshot()
}

// Get returns one entity from the local state
func (c *Coordinator[T]) Get(id string) (T, bool) {
	v, _, ok := c.items.Get(id)
	return v, ok
}

// Replace resets the local state, typically after a remote refresh
func (c *Coordinator[T]) Replace(items []T) {
	c.items.Reset(items)
}

// Alert returns the current failure message
func (c *Coordinator[T]) Alert() Alert {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.alert
}

// DismissAlert hides the failure message
func (c *Coordinator[T]) DismissAlert() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.alert = Alert{}
}

// Raise sets the alert for a failure detected outside the coordinator,
// e.g. a board refresh that fell back to cached data
func (c *Coordinator[T]) Raise(message string) {
	c.raise(message)
}

// Toast returns the current success message
func (c *Coordinator[T]) Toast() Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.toast
}

// CurrentUndo returns the latest undo affordance, nil if none was registered
func (c *Coordinator[T]) CurrentUndo() *Undo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.undo
}

// Undo invokes the latest undo affordance.
// Returns false if there is none or it was used or expired.
func (c *Coordinator[T]) Undo() bool {
	u := c.CurrentUndo()
	if u == nil {
		return false
	}
	return u.Invoke()
}

// Drain waits for all in-flight remote calls, including undo compensations
// started while it waits.
func (c *Coordinator[T]) Drain(ctx context.Context) error {
	return c.inflight.wait(ctx)
}

// ApplyUpdate replaces the entity in place with Transform(current) and
// commits it remotely. On failure the previous value is put back at the
// same position. An id missing locally is skipped silently.
func (c *Coordinator[T]) ApplyUpdate(ctx context.Context, intent UpdateIntent[T]) *Pending {
	p := newPending()
	if intent.Transform == nil || intent.Commit == nil {
		return c.reject(p, KindUpdate, ErrIncompleteIntent)
	}

	snapshot, next, ok := c.items.Update(intent.ID, intent.Transform)
	if !ok {
		c.logger.Debug("update target not found locally", "id", intent.ID)
		p.finish(OutcomeSkipped, nil)
		return p
	}

	label := labelOr(intent.Label, intent.ID)
	c.spawn(ctx, KindUpdate, p, func(rctx context.Context) (Outcome, error) {
		if err := intent.Commit(rctx, next); err != nil {
			// Возвращаем снимок по идентификатору, позиция не меняется
			c.items.Set(snapshot)
			return OutcomeReverted, c.remoteFailed(KindUpdate, intent.ID, label, err)
		}
		return OutcomeSettled, nil
	})
	return p
}

// insertState связывает undo и удаленный вызов одной вставки
type insertState[T Entity] struct {
	created   T
	mu        sync.Mutex
	confirmed bool
	failed    bool
	undone    bool
}

// ApplyInsert appends the placeholder, creates the entity remotely and
// swaps the placeholder for the authoritative entity on success. On failure
// the placeholder is removed.
func (c *Coordinator[T]) ApplyInsert(ctx context.Context, intent InsertIntent[T]) *Pending {
	p := newPending()
	if intent.ActorID == "" {
		return c.reject(p, KindInsert, ErrAuthenticationMissing)
	}
	if intent.Create == nil {
		return c.reject(p, KindInsert, ErrIncompleteIntent)
	}

	placeholder := intent.Placeholder
	localID := placeholder.EntityID()
	if localID == "" {
		return c.reject(p, KindInsert, fmt.Errorf("%w: placeholder has no id", ErrInvalidEntity))
	}
	if err := c.items.Append(placeholder); err != nil {
		return c.reject(p, KindInsert, err)
	}

	label := labelOr(intent.Label, localID)
	rctx := context.WithoutCancel(ctx)
	st := &insertState[T]{}
	u := c.register(label, func() { c.undoInsert(rctx, intent, localID, label, st) })
	p.undo = u

	c.spawn(ctx, KindInsert, p, func(rctx context.Context) (Outcome, error) {
		created, err := intent.Create(rctx, placeholder)
		if err == nil && created.EntityID() == "" {
			err = fmt.Errorf("%w: created entity has no id", ErrInvalidEntity)
		}

		st.mu.Lock()
		if err != nil {
			st.failed = true
			c.items.Remove(localID)
			st.mu.Unlock()
			u.expire()
			return OutcomeReverted, c.remoteFailed(KindInsert, localID, label, err)
		}
		st.confirmed = true
		st.created = created
		undone := st.undone
		if !undone {
			c.items.Swap(localID, created)
		}
		st.mu.Unlock()

		c.recordHistory(rctx, intent.ActorID, created.EntityID(), ActionCreate)
		if undone {
			// Undo пришел раньше подтверждения: запись уже убрана локально
			c.discardCreated(rctx, intent, created, -1, label)
			return OutcomeSettled, nil
		}
		c.showToast(fmt.Sprintf("%s created", label))
		return OutcomeSettled, nil
	})
	return p
}

func (c *Coordinator[T]) undoInsert(rctx context.Context, intent InsertIntent[T], localID, label string, st *insertState[T]) {
	st.mu.Lock()
	st.undone = true
	if st.failed {
		st.mu.Unlock()
		return
	}
	if !st.confirmed {
		// Создание еще в полете; горутина вставки удалит запись на сервере
		c.items.Remove(localID)
		st.mu.Unlock()
		c.recorder.ObserveUndo(KindInsert)
		return
	}
	created := st.created
	_, idx, ok := c.items.Remove(created.EntityID())
	st.mu.Unlock()

	c.recorder.ObserveUndo(KindInsert)
	if !ok {
		return
	}
	c.discardCreated(rctx, intent, created, idx, label)
}

// discardCreated removes a confirmed entity remotely. idx is where to put it
// back on failure (-1 appends).
func (c *Coordinator[T]) discardCreated(rctx context.Context, intent InsertIntent[T], created T, idx int, label string) {
	if intent.Discard == nil {
		c.logger.Debug("insert undone locally only", "id", created.EntityID())
		return
	}

	id := created.EntityID()
	c.spawn(rctx, KindDiscard, newPending(), func(rctx context.Context) (Outcome, error) {
		if err := intent.Discard(rctx, created); err != nil {
			c.items.InsertAt(idx, created)
			return OutcomeReverted, c.remoteFailed(KindDiscard, id, label, err)
		}
		c.recordHistory(rctx, intent.ActorID, id, ActionDiscard)
		return OutcomeSettled, nil
	})
}

// deleteState связывает undo и удаленный вызов одного удаления
type deleteState[T Entity] struct {
	entity    T
	index     int
	mu        sync.Mutex
	confirmed bool
	failed    bool
	undone    bool
}

// ApplyDelete removes the entity locally and deletes it remotely. On failure
// it is re-inserted at its former index, or appended if that index no
// longer exists. An id missing locally is skipped silently.
func (c *Coordinator[T]) ApplyDelete(ctx context.Context, intent DeleteIntent[T]) *Pending {
	p := newPending()
	if intent.ActorID == "" {
		return c.reject(p, KindDelete, ErrAuthenticationMissing)
	}
	if intent.Delete == nil {
		return c.reject(p, KindDelete, ErrIncompleteIntent)
	}

	removed, idx, ok := c.items.Remove(intent.ID)
	if !ok {
		c.logger.Debug("delete target not found locally", "id", intent.ID)
		p.finish(OutcomeSkipped, nil)
		return p
	}

	label := labelOr(intent.Label, intent.ID)
	rctx := context.WithoutCancel(ctx)
	st := &deleteState[T]{entity: removed, index: idx}
	u := c.register(label, func() { c.undoDelete(rctx, intent, label, st) })
	p.undo = u

	c.spawn(ctx, KindDelete, p, func(rctx context.Context) (Outcome, error) {
		err := intent.Delete(rctx, removed)

		st.mu.Lock()
		if err != nil {
			st.failed = true
			// Если undo уже вернул запись, InsertAt ничего не сделает
			c.items.InsertAt(idx, removed)
			st.mu.Unlock()
			u.expire()
			return OutcomeReverted, c.remoteFailed(KindDelete, intent.ID, label, err)
		}
		st.confirmed = true
		undone := st.undone
		st.mu.Unlock()

		c.recordHistory(rctx, intent.ActorID, intent.ID, ActionDelete)
		if undone {
			c.restoreDeleted(rctx, intent, label, st)
			return OutcomeSettled, nil
		}
		c.showToast(fmt.Sprintf("%s deleted", label))
		return OutcomeSettled, nil
	})
	return p
}

func (c *Coordinator[T]) undoDelete(rctx context.Context, intent DeleteIntent[T], label string, st *deleteState[T]) {
	st.mu.Lock()
	st.undone = true
	if st.failed {
		st.mu.Unlock()
		return
	}
	c.items.InsertAt(st.index, st.entity)
	confirmed := st.confirmed
	st.mu.Unlock()

	c.recorder.ObserveUndo(KindDelete)
	if confirmed {
		c.restoreDeleted(rctx, intent, label, st)
	}
}

func (c *Coordinator[T]) restoreDeleted(rctx context.Context, intent DeleteIntent[T], label string, st *deleteState[T]) {
	if intent.Restore == nil {
		c.logger.Debug("delete undone locally only", "id", intent.ID)
		return
	}

	c.spawn(rctx, KindRestore, newPending(), func(rctx context.Context) (Outcome, error) {
		if err := intent.Restore(rctx, st.entity); err != nil {
			c.items.Remove(intent.ID)
			return OutcomeReverted, c.remoteFailed(KindRestore, intent.ID, label, err)
		}
		c.recordHistory(rctx, intent.ActorID, intent.ID, ActionRestore)
		return OutcomeSettled, nil
	})
}

// spawn runs call in its own goroutine, detached from ctx cancellation
func (c *Coordinator[T]) spawn(ctx context.Context, kind Kind, p *Pending, call func(ctx context.Context) (Outcome, error)) {
	rctx := context.WithoutCancel(ctx)
	started := c.clock.Now()

	c.inflight.add()
	go func() {
		defer c.inflight.done()

		outcome, err := call(rctx)
		c.recorder.ObserveMutation(kind, outcome, c.clock.Since(started))
		p.finish(outcome, err)
	}()
}

// register makes u the current undo affordance, expiring the previous one
func (c *Coordinator[T]) register(label string, action func()) *Undo {
	u := &Undo{label: label, action: action}
	u.setTimer(c.clock.AfterFunc(c.undoWindow, u.expire))

	c.mu.Lock()
	prev := c.undo
	c.undo = u
	c.mu.Unlock()

	if prev != nil {
		prev.expire()
	}
	return u
}

func (c *Coordinator[T]) reject(p *Pending, kind Kind, err error) *Pending {
	c.logger.Warn("mutation rejected", "op", kind, "error", err)
	c.raise(fmt.Sprintf("Could not %s: %v", kind.verb(), err))
	c.recorder.ObserveMutation(kind, OutcomeRejected, 0)
	p.finish(OutcomeRejected, err)
	return p
}

func (c *Coordinator[T]) remoteFailed(kind Kind, id, label string, err error) error {
	c.logger.Warn("remote operation failed, local state reverted",
		"op", kind,
		"id", id,
		"error", err)
	c.raise(fmt.Sprintf("Could not %s %s: %v", kind.verb(), label, err))
	return &RemoteError{Op: kind, ID: id, Err: err}
}

func (c *Coordinator[T]) raise(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.alert = Alert{Message: message, Show: true}
}

func (c *Coordinator[T]) showToast(message string) {
	c.mu.Lock()
	c.toastSeq++
	seq := c.toastSeq
	c.toast = Toast{Message: message, Show: true}
	c.mu.Unlock()

	c.clock.AfterFunc(c.toastWindow, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		// Более новый toast не трогаем
		if c.toastSeq == seq {
			c.toast = Toast{}
		}
	})
}

// recordHistory пишет аудит best-effort: ошибка только логируется
func (c *Coordinator[T]) recordHistory(ctx context.Context, actorID, entityID, action string) {
	if c.history == nil {
		return
	}
	if err := c.history.RecordHistory(ctx, actorID, entityID, action); err != nil {
		c.logger.Warn("failed to record history",
			"action", action,
			"entity_id", entityID,
			"error", err)
	}
}

func labelOr(label, fallback string) string {
	if label != "" {
		return label
	}
	return fallback
}
