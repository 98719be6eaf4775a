// Package editor wires coercion, the catalog, and the model store into the
// editing session that presentation layers call into.
package editor

import (
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/paramedit/internal/catalog"
	"github.com/alexisbeaulieu97/paramedit/internal/logger"
	"github.com/alexisbeaulieu97/paramedit/internal/model"
	"github.com/alexisbeaulieu97/paramedit/internal/param"
	editorerrors "github.com/alexisbeaulieu97/paramedit/pkg/errors"
)

// Session owns the current snapshot for one editing session. It is not safe
// for concurrent use: a single event loop drives it, one call at a time.
type Session struct {
	id      string
	catalog *catalog.Catalog
	initial model.Model
	current model.Model
	log     *logger.Logger

	projection model.Projection
	projected  bool
}

// Option customises a Session.
type Option func(*Session)

// WithLogger attaches a logger; transitions are written at debug level.
func WithLogger(log *logger.Logger) Option {
	return func(s *Session) {
		s.log = log
	}
}

// WithID overrides the generated session identifier.
func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// NewSession starts a session at the initial snapshot.
func NewSession(cat *catalog.Catalog, initial model.Model, opts ...Option) *Session {
	s := &Session{
		id:      uuid.NewString(),
		catalog: cat,
		initial: initial,
		current: initial,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("session_id", s.id, "component", "editor")
	s.log.Debug("session started", "parameters", cat.Len(), "values", initial.Len(), "colors", len(initial.Colors()))
	return s
}

// ID returns the session identifier used to correlate log entries.
func (s *Session) ID() string {
	return s.id
}

// Catalog returns the parameter catalog the session edits against.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// InitialModel returns the snapshot the session started from.
func (s *Session) InitialModel() model.Model {
	return s.initial
}

// Model returns the current snapshot.
func (s *Session) Model() model.Model {
	return s.current
}

// OnFieldEdit coerces raw with the parameter's declared type and stores the
// result. An id that is not in the catalog is a caller bug: it returns an
// *errors.UnknownParameterError and the current snapshot is left as is.
func (s *Session) OnFieldEdit(id param.ID, raw string) (model.Model, error) {
	p, ok := s.catalog.Get(id)
	if !ok {
		err := editorerrors.NewUnknownParameterError(int(id))
		s.log.Error(err, "edit rejected", "param_id", int(id))
		return s.current, err
	}

	value := param.Coerce(raw, p.Type)
	s.current = model.SetValue(s.current, id, value)
	s.log.Debug("field edited", "param_id", int(id), "param_type", string(p.Type), "value", value.String())
	return s.current, nil
}

// OnAddColor appends the trimmed color. Blank input is ignored.
func (s *Session) OnAddColor(raw string) model.Model {
	next := model.AddColor(s.current, raw)
	if len(next.Colors()) == len(s.current.Colors()) {
		s.log.Debug("blank color ignored")
		return s.current
	}
	s.current = next
	s.log.Debug("color added", "colors", len(next.Colors()))
	return s.current
}

// CurrentValueFor returns the current value of id, or false when it has none.
func (s *Session) CurrentValueFor(id param.ID) (param.Value, bool) {
	return s.Projection().Get(id)
}

// Projection returns the lookup view of the current snapshot, rebuilding it
// only when the value sequence has changed since the last call.
func (s *Session) Projection() model.Projection {
	if !s.projected || s.projection.Revision() != s.current.Revision() {
		s.projection = model.Project(s.current)
		s.projected = true
	}
	return s.projection
}

// Dirty reports whether the current snapshot differs from the initial one.
func (s *Session) Dirty() bool {
	return !model.Equal(s.initial, s.current)
}
