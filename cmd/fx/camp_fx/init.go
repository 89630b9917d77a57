package camp_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"flock/internal/repositories"
	"flock/internal/services"
)

var Module = fx.Provide(
	provideCampService, provideCampRepo)

func provideCampRepo(db *gorm.DB) repositories.CampRepository {
	return repositories.NewCampRepository(db)
}

func provideCampService(campRepo repositories.CampRepository, memberRepo repositories.MemberRepository) services.CampServiceInterface {
	return services.NewCampService(campRepo, memberRepo)
}
