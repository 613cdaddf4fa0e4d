package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/Parallaxx203/audifyx-backend/internal/config"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.ProfileRepository { return s.Profiles() },
		func(s *Storage) repository.PointsRepository { return s.Points() },
		func(s *Storage) repository.PayoutRepository { return s.Payouts() },
		func(s *Storage) repository.FollowRepository { return s.Follows() },
		func(s *Storage) repository.MessageRepository { return s.Messages() },
		func(s *Storage) repository.ContentRepository { return s.Content() },
		func(s *Storage) repository.NotificationRepository { return s.Notifications() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
