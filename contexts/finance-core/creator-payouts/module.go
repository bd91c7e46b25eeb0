package creatorpayouts

import (
	"log/slog"

	"creatorpass/contexts/finance-core/creator-payouts/adapters/memory"
	"creatorpass/contexts/finance-core/creator-payouts/application"
	"creatorpass/contexts/finance-core/creator-payouts/ports"
)

// Module is the composition surface for creator payouts. Service doubles as
// the content ledger's PaymentGateway.
type Module struct {
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repo   ports.Repository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Service: application.Service{
			Repo:   deps.Repo,
			Clock:  deps.Clock,
			IDGen:  deps.IDGen,
			Logger: deps.Logger,
		},
	}
}

// NewInMemoryModule wires the balance book against the in-memory store.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repo:   store,
		Clock:  store,
		IDGen:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
