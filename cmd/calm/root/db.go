package root

import (
	"context"

	"github.com/RACSolutions/calm-compass-autism-support/internal/engine"
	"github.com/RACSolutions/calm-compass-autism-support/internal/storage"
)

func openStore(ctx context.Context, app *appState) (storage.Store, func(), error) {
	opts := app.cfg.StorageOptions()
	opts.Logger = app.logger.Named("storage")
	st, err := storage.Open(ctx, opts)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = st.Close()
	}
	return st, cleanup, nil
}

func openService(ctx context.Context, app *appState) (*engine.Service, func(), error) {
	st, cleanup, err := openStore(ctx, app)
	if err != nil {
		return nil, nil, err
	}
	return engine.NewService(st, engine.WithLogger(app.logger.Named("engine"))), cleanup, nil
}

// loadUser opens the service and loads the user record. A broken record is
// reported rather than silently replaced by defaults.
func loadUser(ctx context.Context, app *appState) (*engine.Service, *engine.UserData, func(), error) {
	svc, cleanup, err := openService(ctx, app)
	if err != nil {
		return nil, nil, nil, err
	}
	u, err := svc.LoadUserData(ctx)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	return svc, &u, cleanup, nil
}
