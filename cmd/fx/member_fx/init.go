package member_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"flock/internal/repositories"
	"flock/internal/services"
)

var Module = fx.Provide(
	provideMemberService, provideScopeResolver,
	provideMemberRepo, provideAssignmentRepo)

func provideMemberRepo(db *gorm.DB) repositories.MemberRepository {
	return repositories.NewMemberRepository(db)
}

func provideAssignmentRepo(db *gorm.DB) repositories.AssignmentRepository {
	return repositories.NewAssignmentRepository(db)
}

func provideScopeResolver(assignmentRepo repositories.AssignmentRepository) services.ScopeResolver {
	return services.NewScopeResolver(assignmentRepo)
}

func provideMemberService(
	memberRepo repositories.MemberRepository,
	userRepo repositories.UserRepository,
	assignmentRepo repositories.AssignmentRepository,
	scopes services.ScopeResolver,
	mail services.IMailService,
) services.MemberServiceInterface {
	return services.NewMemberService(memberRepo, userRepo, assignmentRepo, scopes, mail, os.Getenv("APP_BASE_URL"))
}
