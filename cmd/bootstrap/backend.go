package bootstrap

import (
	"log/slog"

	"booking-portal/internal/infra/backend"
	"booking-portal/internal/session"

	"go.uber.org/fx"
)

var BackendModule = fx.Module("backend",
	fx.Provide(
		fx.Annotate(
			backend.NewClient,
			fx.As(new(backend.API)),
		),
	),
)

var SessionModule = fx.Module("session",
	fx.Provide(session.NewStore),
	fx.Invoke(logSessionChanges),
)

// logSessionChanges records every sign-in and sign-out.
func logSessionChanges(lc fx.Lifecycle, store *session.Store, logger *slog.Logger) {
	unsubscribe := store.Subscribe(func(s session.Session) {
		if !s.Authenticated() {
			logger.Info("session cleared")
			return
		}
		logger.Info("session replaced", "user_id", s.UserID(), "role", string(s.Role()))
	})
	lc.Append(fx.StopHook(unsubscribe))
}
