package auth_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"flock/internal/repositories"
	"flock/internal/services"
)

var Module = fx.Provide(
	provideAuthService, provideUserRepo)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAuthService(userRepo repositories.UserRepository) services.AuthServiceInterface {
	return services.NewAuthService(userRepo)
}
