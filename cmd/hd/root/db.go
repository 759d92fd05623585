package root

import (
	"fmt"
	"os"

	"habitdash/internal/config"
	"habitdash/internal/engine"
	"habitdash/internal/storage"
	"habitdash/internal/ui"
)

func loadConfig() (config.Config, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(path)
}

// openService wires a Service over the configured database. When the
// database cannot be opened the dashboard still runs, just without
// durability for this session.
func openService() (*engine.Service, config.Config, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	st, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Warn.Render(ui.IconWarn+" storage unavailable, running in-memory: "+err.Error()))
		return engine.NewService(storage.NewMemoryStore()), cfg, func() {}, nil
	}
	cleanup := func() {
		_ = st.Close()
	}
	return engine.NewService(st), cfg, cleanup, nil
}
