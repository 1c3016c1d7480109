package session

import (
	"time"

	"go.uber.org/zap"

	"github.com/muurk/motohub/internal/garage"
	"github.com/muurk/motohub/internal/logging"
)

// State is the controller state. There is no saving or error state: commit
// is synchronous and always succeeds.
type State int

const (
	StateClosed State = iota
	StateOpen
)

// String returns the state name
func (s State) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

// Config wires a Controller to its owner.
type Config[E garage.Entity] struct {
	// OnSave receives the committed entity, before OnClose
	OnSave func(E)
	// OnClose is called once per session end, commit or cancel
	OnClose func()
	// Now supplies the clock for date defaults; time.Now when nil
	Now func() time.Time
	// NewID generates ids for entities that have none; garage.NewID when nil
	NewID func(garage.Kind) string
}

// Controller runs edit sessions over one Draft.
type Controller[E garage.Entity] struct {
	draft Draft[E]
	cfg   Config[E]

	state State
	prev  *E // entity the open session was seeded from; nil in create mode
}

// New creates a closed controller.
func New[E garage.Entity](draft Draft[E], cfg Config[E]) *Controller[E] {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = garage.NewID
	}
	return &Controller[E]{draft: draft, cfg: cfg}
}

// Open starts (or restarts) a session. A nil entity opens in create mode.
// Every draft field is re-seeded either way.
func (c *Controller[E]) Open(entity *E) {
	c.prev = nil
	if entity != nil {
		cp := *entity
		c.prev = &cp
	}

	c.draft.Seed(c.prev, c.cfg.Now())
	c.state = StateOpen

	logging.LogSessionEvent(string(c.draft.Kind()), c.entityID(), "opened")
}

// SetField replaces one draft field with raw text. The value is not
// validated.
func (c *Controller[E]) SetField(name, value string) error {
	if c.state != StateOpen {
		return &Error{Kind: ErrKindNotOpen, Entity: string(c.draft.Kind())}
	}
	if !c.draft.Set(name, value) {
		return &Error{Kind: ErrKindUnknownField, Entity: string(c.draft.Kind()), Field: name}
	}
	logging.LogSessionEvent(string(c.draft.Kind()), c.entityID(), "field_set", zap.String("field", name))
	return nil
}

// Field returns the draft's current text for name.
func (c *Controller[E]) Field(name string) (string, bool) {
	for _, f := range c.draft.Fields() {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Fields returns the draft fields in display order.
func (c *Controller[E]) Fields() []Field {
	return c.draft.Fields()
}

// Commit builds the replacement entity, hands it to OnSave and closes the
// session.
func (c *Controller[E]) Commit() (E, error) {
	var zero E
	if c.state != StateOpen {
		return zero, &Error{Kind: ErrKindNotOpen, Entity: string(c.draft.Kind())}
	}

	kind := c.draft.Kind()
	entity := c.draft.Build(c.prev, Env{
		Now:   c.cfg.Now(),
		NewID: func() string { return c.cfg.NewID(kind) },
	})

	logging.LogSessionEvent(string(kind), entity.EntityID(), "committed")

	if c.cfg.OnSave != nil {
		c.cfg.OnSave(entity)
	}
	c.close()

	return entity, nil
}

// Cancel discards the draft and closes the session. It is a no-op when
// already closed.
func (c *Controller[E]) Cancel() {
	if c.state != StateOpen {
		return
	}
	logging.LogSessionEvent(string(c.draft.Kind()), c.entityID(), "cancelled")
	c.close()
}

func (c *Controller[E]) close() {
	c.state = StateClosed
	if c.cfg.OnClose != nil {
		c.cfg.OnClose()
	}
}

// State returns the current state.
func (c *Controller[E]) State() State {
	return c.state
}

// IsOpen reports whether a session is in progress.
func (c *Controller[E]) IsOpen() bool {
	return c.state == StateOpen
}

// IsCreate reports whether the current (or last) session was opened without
// an entity.
func (c *Controller[E]) IsCreate() bool {
	return c.prev == nil
}

// Kind returns the entity kind being edited.
func (c *Controller[E]) Kind() garage.Kind {
	return c.draft.Kind()
}

func (c *Controller[E]) entityID() string {
	if c.prev == nil {
		return ""
	}
	return (*c.prev).EntityID()
}
