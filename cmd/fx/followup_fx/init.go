package followup_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"flock/internal/repositories"
	"flock/internal/services"
)

var Module = fx.Provide(
	provideFollowUpService, provideFollowUpRepo)

func provideFollowUpRepo(db *gorm.DB) repositories.FollowUpRepository {
	return repositories.NewFollowUpRepository(db)
}

func provideFollowUpService(
	followUpRepo repositories.FollowUpRepository,
	memberRepo repositories.MemberRepository,
	scopes services.ScopeResolver,
) services.FollowUpServiceInterface {
	return services.NewFollowUpService(followUpRepo, memberRepo, scopes)
}
