package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/Parallaxx203/audifyx-backend/internal/app"
	"github.com/Parallaxx203/audifyx-backend/internal/config"
	"github.com/Parallaxx203/audifyx-backend/internal/domain/repository"
	"github.com/Parallaxx203/audifyx-backend/internal/storage/postgres"
	"github.com/Parallaxx203/audifyx-backend/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:         ":0",
		DatabaseURI:        "postgres://stub",
		TokenSecret:        "secret",
		NotifyPollInterval: time.Millisecond,
		WorkerPoolSize:     1,
		ShutdownTimeout:    time.Millisecond,
		MaxNotifyBatch:     1,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	var facade *app.AudifyxFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.ProfileRepository(test.NewProfileRepositoryStub())),
			fx.Replace(repository.PointsRepository(&test.PointsRepositoryStub{})),
			fx.Replace(repository.PayoutRepository(&test.PayoutRepositoryStub{})),
			fx.Replace(repository.FollowRepository(&test.FollowRepositoryStub{})),
			fx.Replace(repository.MessageRepository(&test.MessageRepositoryStub{})),
			fx.Replace(repository.ContentRepository(&test.ContentRepositoryStub{})),
			fx.Replace(repository.NotificationRepository(&test.NotificationRepositoryStub{})),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected audifyx facade instance")
	}
}
