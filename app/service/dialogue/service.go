package dialogue

import (
	"log/slog"
	"sync"
	"talentscout/app/client/openrouter"
	"talentscout/app/service/store"
	"talentscout/app/service/validate"

	"github.com/google/uuid"
	"github.com/samber/do"
)

// Service is the session registry: one Session per candidate conversation,
// keyed by an opaque id handed to the presentation layer. Sessions are
// mutually independent, the registry itself is safe for concurrent use.
type Service struct {
	generator  Generator
	validators ContactValidator
	store      CandidateStore

	mu       sync.RWMutex
	sessions map[string]*Session
}

func New(di *do.Injector) (*Service, error) {
	return NewService(
		do.MustInvoke[*openrouter.Client](di),
		do.MustInvoke[*validate.Service](di),
		do.MustInvoke[*store.Service](di),
	), nil
}

func NewService(generator Generator, validators ContactValidator, candidateStore CandidateStore) *Service {
	return &Service{
		generator:  generator,
		validators: validators,
		store:      candidateStore,
		sessions:   map[string]*Session{},
	}
}

func (s *Service) CreateSession() (string, *Session) {
	id := uuid.NewString()
	session := NewSession(s.generator, s.validators, s.store)

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	slog.Info("Created screening session", "session_id", id)

	return id, session
}

func (s *Service) Session(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]

	return session, ok
}
