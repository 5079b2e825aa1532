package root

import (
	"context"
	"database/sql"

	"github.com/Annoyingpheonix/Axiom/internal/agents"
	"github.com/Annoyingpheonix/Axiom/internal/engine"
	"github.com/Annoyingpheonix/Axiom/internal/storage"
)

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	client := agents.NewClient(agents.DefaultConfig())
	svc := engine.NewService(db, agents.NewQuestAgent(client), agents.NewVerifierAgent(client))
	return svc, cleanup, nil
}
