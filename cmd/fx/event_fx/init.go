package event_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"flock/internal/repositories"
	"flock/internal/services"
)

var Module = fx.Provide(
	provideEventService, provideEventRepo, provideAttendanceRepo)

func provideEventRepo(db *gorm.DB) repositories.EventRepository {
	return repositories.NewEventRepository(db)
}

func provideAttendanceRepo(db *gorm.DB) repositories.AttendanceRepository {
	return repositories.NewAttendanceRepository(db)
}

func provideEventService(
	eventRepo repositories.EventRepository,
	attendanceRepo repositories.AttendanceRepository,
	memberRepo repositories.MemberRepository,
	scopes services.ScopeResolver,
) services.EventServiceInterface {
	return services.NewEventService(eventRepo, attendanceRepo, memberRepo, scopes)
}
