package email

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/Parallaxx203/audifyx-backend/internal/config"
)

// Module exposes the email client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) Client {
	if p.Config.EmailAPIKey == "" {
		p.Logger.Warn("email api key not set, delivery disabled")
		return NewNoopClient(p.Logger)
	}
	return NewHTTPClient(p.Config.EmailAPIURL, p.Config.EmailAPIKey, p.Config.EmailSender, p.Logger)
}
