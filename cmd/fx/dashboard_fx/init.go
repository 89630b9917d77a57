package dashboard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"flock/internal/repositories"
	"flock/internal/services"
)

var Module = fx.Provide(
	provideDashboardService, provideDashboardRepo)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(repo repositories.DashboardRepository, scopes services.ScopeResolver) services.DashboardServiceInterface {
	return services.NewDashboardService(repo, scopes)
}
