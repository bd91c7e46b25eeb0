package contentledger

import (
	"log/slog"
	"time"

	httpadapter "creatorpass/contexts/creator-economy/content-ledger/adapters/http"
	"creatorpass/contexts/creator-economy/content-ledger/adapters/memory"
	"creatorpass/contexts/creator-economy/content-ledger/application/commands"
	"creatorpass/contexts/creator-economy/content-ledger/application/queries"
	"creatorpass/contexts/creator-economy/content-ledger/ports"
)

// Module is the composition surface for the content ledger. Runtime wiring
// should consume Handler; Store is exposed for tests/inspection.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Contents       ports.ContentRepository
	Subscriptions  ports.SubscriptionRepository
	Idempotency    ports.IdempotencyStore
	Payments       ports.PaymentGateway
	Events         ports.EventPublisher
	Clock          ports.Clock
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

// NewModule wires the ledger use-cases against explicit ports.
func NewModule(deps Dependencies) Module {
	handler := httpadapter.Handler{
		CreateContent: commands.CreateContentUseCase{
			Contents: deps.Contents,
			Clock:    deps.Clock,
			Events:   deps.Events,
			Logger:   deps.Logger,
		},
		UpdateContent: commands.UpdateContentUseCase{
			Contents: deps.Contents,
			Clock:    deps.Clock,
			Events:   deps.Events,
			Logger:   deps.Logger,
		},
		ToggleContentStatus: commands.ToggleContentStatusUseCase{
			Contents: deps.Contents,
			Logger:   deps.Logger,
		},
		Subscribe: commands.SubscribeUseCase{
			Contents:       deps.Contents,
			Subscriptions:  deps.Subscriptions,
			Idempotency:    deps.Idempotency,
			Payments:       deps.Payments,
			Events:         deps.Events,
			Clock:          deps.Clock,
			IdempotencyTTL: deps.IdempotencyTTL,
			Logger:         deps.Logger,
		},
		GetContent: queries.GetContentUseCase{
			Contents: deps.Contents,
			Logger:   deps.Logger,
		},
		CheckAccess: queries.CheckAccessUseCase{
			Subscriptions: deps.Subscriptions,
			Clock:         deps.Clock,
			Logger:        deps.Logger,
		},
		ListCreatorContents: queries.ListCreatorContentsUseCase{
			Contents: deps.Contents,
			Logger:   deps.Logger,
		},
		ListSubscriptions: queries.ListUserSubscriptionsUseCase{
			Subscriptions: deps.Subscriptions,
			Logger:        deps.Logger,
		},
		CountActive: queries.CountActiveContentsUseCase{
			Contents: deps.Contents,
			Logger:   deps.Logger,
		},
		Logger: deps.Logger,
	}

	return Module{Handler: handler}
}

// NewInMemoryModule wires the ledger against its in-memory adapters. This is
// the runtime path when no database is configured, and the fixture path for
// tests.
func NewInMemoryModule(payments ports.PaymentGateway, events ports.EventPublisher, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Contents:       store,
		Subscriptions:  store,
		Idempotency:    store,
		Payments:       payments,
		Events:         events,
		Clock:          store,
		IdempotencyTTL: 7 * 24 * time.Hour,
		Logger:         logger,
	})
	module.Store = store
	return module
}
