package controllers_fx

import (
	"go.uber.org/fx"

	"flock/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewMemberController),
	fx.Provide(controllers.NewCampController),
	fx.Provide(controllers.NewEventController),
	fx.Provide(controllers.NewFollowUpController),
	fx.Provide(controllers.NewAttentionController),
	fx.Provide(controllers.NewImportController),
	fx.Provide(controllers.NewMessagingController),
	fx.Provide(controllers.NewDashboardController))
