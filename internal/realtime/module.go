package realtime

import (
	"go.uber.org/fx"

	"github.com/Parallaxx203/audifyx-backend/internal/usecase"
)

// Module provides the realtime hub and exposes it as the messaging publisher.
var Module = fx.Options(
	fx.Provide(NewHub),
	fx.Provide(func(h *Hub) usecase.Publisher { return h }),
)
