package media

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/Parallaxx203/audifyx-backend/internal/config"
)

// Module exposes the media store implementation to the fx graph.
var Module = fx.Provide(newStore)

type storeParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newStore(p storeParams) (Store, error) {
	if p.Config.CloudinaryURL == "" {
		p.Logger.Warn("cloudinary url not set, uploads disabled")
		return NewDisabledStore(p.Logger), nil
	}
	return NewCloudinaryStore(p.Config.CloudinaryURL, p.Logger)
}
