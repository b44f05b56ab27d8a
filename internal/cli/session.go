package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/idilsaglam/shoplist/internal/config"
	"github.com/idilsaglam/shoplist/internal/logger"
	"github.com/idilsaglam/shoplist/internal/store"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// session wires one store to config and logging.
type session struct {
	ctx   context.Context
	log   *logger.Logger
	store *store.Store
	close func() error
}

func newSession(ctx context.Context, opt Options, extra ...store.Option) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	override(&cfg.Theme, opt.Theme)
	override(&cfg.IDScheme, opt.IDScheme)
	override(&cfg.LogLevel, opt.LogLevel)
	override(&cfg.LogFile, opt.LogFile)
	if err := cfg.Validate(); err != nil {
		return nil, usage(err)
	}

	scheme, err := store.ParseIDScheme(cfg.IDScheme)
	if err != nil {
		return nil, usage(err)
	}
	ui.SetTheme(cfg.Theme)

	out, err := logger.OpenFile(cfg.LogFile)
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: cfg.LogFormat,
		Output: out,
	})
	ctx = log.WithSessionID(ctx, uuid.New().String())

	opts := append([]store.Option{
		store.WithIDScheme(scheme),
		store.WithSubscriber(logChanges(ctx, log)),
	}, extra...)

	log.Info(ctx, fmt.Sprintf("session started (theme=%s, ids=%s)", cfg.Theme, scheme))
	return &session{
		ctx:   ctx,
		log:   log,
		store: store.New(opts...),
		close: out.Close,
	}, nil
}

func (s *session) Close() error {
	s.log.Info(s.ctx, "session ended")
	return s.close()
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func logChanges(ctx context.Context, log *logger.Logger) func(store.Snapshot) {
	return func(snap store.Snapshot) {
		log.Debug(ctx, "store changed", map[string]any{
			"items":           len(snap.Items),
			"add_dialog_open": snap.AddDialogOpen,
		})
	}
}
