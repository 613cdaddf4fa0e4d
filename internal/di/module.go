package di

import (
	"go.uber.org/fx"

	"github.com/Parallaxx203/audifyx-backend/internal/adapter/email"
	"github.com/Parallaxx203/audifyx-backend/internal/adapter/media"
	"github.com/Parallaxx203/audifyx-backend/internal/app"
	"github.com/Parallaxx203/audifyx-backend/internal/config"
	"github.com/Parallaxx203/audifyx-backend/internal/logger"
	"github.com/Parallaxx203/audifyx-backend/internal/pkg/auth"
	"github.com/Parallaxx203/audifyx-backend/internal/realtime"
	"github.com/Parallaxx203/audifyx-backend/internal/server/http/router"
	"github.com/Parallaxx203/audifyx-backend/internal/storage/dedup"
	"github.com/Parallaxx203/audifyx-backend/internal/storage/postgres"
	"github.com/Parallaxx203/audifyx-backend/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		dedup.Module,
		realtime.Module,
		email.Module,
		media.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
