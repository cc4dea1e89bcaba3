package registry

import (
	"context"
	"fmt"

	"github.com/palettelab/retint/internal/adapter"
	"github.com/palettelab/retint/internal/auth"
	"github.com/palettelab/retint/internal/domain"
	"github.com/palettelab/retint/internal/events"
	"github.com/palettelab/retint/internal/store"
	"github.com/palettelab/retint/internal/store/schema"
)

// Registry manages the pool of colorization processors
//
//go:generate mockgen -source=registry.go -destination=../mocks/registry.go -package=mocks -mock_names=Registry=MockRegistry
type Registry interface {
	// Register adds the calling identity to the processor pool
	Register(ctx context.Context, identity, modelRef string) (*schema.Processor, error)
	// Get returns a processor profile, or nil if absent
	Get(ctx context.Context, identity string) (*schema.Processor, error)
	// SetActive flips a processor's active flag. Administrative.
	SetActive(ctx context.Context, actor, identity string, active bool) (*schema.Processor, error)
	// SetReputation overwrites a processor's reputation score. Administrative.
	SetReputation(ctx context.Context, actor, identity string, reputation int) (*schema.Processor, error)
}

type service struct {
	store      store.Store
	authorizer auth.Authorizer
	dispatcher events.Dispatcher
	clock      adapter.Clock
}

// NewService creates a processor registry backed by the store
func NewService(s store.Store, authorizer auth.Authorizer, dispatcher events.Dispatcher, clock adapter.Clock) Registry {
	return &service{
		store:      s,
		authorizer: authorizer,
		dispatcher: dispatcher,
		clock:      clock,
	}
}

// Register adds the calling identity to the processor pool. New processors
// start active with a neutral reputation.
func (s *service) Register(ctx context.Context, identity, modelRef string) (*schema.Processor, error) {
	now := s.clock.Now()
	processor := schema.Processor{
		Identity:     identity,
		ModelRef:     modelRef,
		Reputation:   domain.DefaultReputation,
		Active:       true,
		RegisteredAt: now,
	}

	if err := s.store.CreateProcessor(ctx, processor); err != nil {
		return nil, fmt.Errorf("failed to register processor: %w", err)
	}

	s.dispatcher.Dispatch(ctx, domain.NewEvent(domain.EventProcessorRegistered, domain.ProcessorRegisteredPayload{
		Identity: identity,
		ModelRef: modelRef,
	}, now))

	return &processor, nil
}

// Get returns a processor profile, or nil if absent
func (s *service) Get(ctx context.Context, identity string) (*schema.Processor, error) {
	return s.store.GetProcessor(ctx, identity)
}

// SetActive flips a processor's active flag. Only the administrative
// capability may call it.
func (s *service) SetActive(ctx context.Context, actor, identity string, active bool) (*schema.Processor, error) {
	if !s.authorizer.IsAdministrator(actor) {
		return nil, domain.ErrUnauthorized
	}

	processor, err := s.store.SetProcessorActive(ctx, identity, active)
	if err != nil {
		return nil, fmt.Errorf("failed to set processor status: %w", err)
	}

	s.dispatcher.Dispatch(ctx, domain.NewEvent(domain.EventProcessorStatusChanged, domain.ProcessorStatusChangedPayload{
		Identity: identity,
		Active:   active,
	}, s.clock.Now()))

	return processor, nil
}

// SetReputation overwrites a processor's reputation score. Only the
// administrative capability may call it, and the score must stay in range.
func (s *service) SetReputation(ctx context.Context, actor, identity string, reputation int) (*schema.Processor, error) {
	if !s.authorizer.IsAdministrator(actor) {
		return nil, domain.ErrUnauthorized
	}
	if !domain.ValidReputation(reputation) {
		return nil, domain.ErrReputationOutOfRange
	}

	processor, err := s.store.SetProcessorReputation(ctx, identity, reputation)
	if err != nil {
		return nil, fmt.Errorf("failed to set processor reputation: %w", err)
	}

	s.dispatcher.Dispatch(ctx, domain.NewEvent(domain.EventReputationUpdated, domain.ReputationUpdatedPayload{
		Identity:   identity,
		Reputation: reputation,
	}, s.clock.Now()))

	return processor, nil
}
