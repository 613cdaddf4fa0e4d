package usecase

import "go.uber.org/fx"

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(
		NewAuthUseCase,
		NewPointsUseCase,
		NewPayoutUseCase,
		NewFollowUseCase,
		NewMessagingUseCase,
		NewContentUseCase,
	),
	fx.Provide(func(u *PointsUseCase) Awarder { return u }),
)
