package attention_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"flock/internal/repositories"
	"flock/internal/services"
)

var Module = fx.Provide(
	provideAttentionService, provideAttentionRepo)

func provideAttentionRepo(db *gorm.DB) repositories.AttentionRepository {
	return repositories.NewAttentionRepository(db)
}

func provideAttentionService(
	attentionRepo repositories.AttentionRepository,
	followUpRepo repositories.FollowUpRepository,
	memberRepo repositories.MemberRepository,
	scopes services.ScopeResolver,
) services.AttentionServiceInterface {
	return services.NewAttentionService(attentionRepo, followUpRepo, memberRepo, scopes)
}
