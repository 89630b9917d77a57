package import_fx

import (
	"os"

	"go.uber.org/fx"

	"flock/internal/infra"
	"flock/internal/repositories"
	"flock/internal/services"
	mem "flock/pkg/memcache"
)

var Module = fx.Provide(
	provideImportService, provideSheetsSource)

func provideSheetsSource() infra.SpreadsheetSource {
	return infra.NewGoogleSheetsSource(os.Getenv("GOOGLE_SHEETS_API_KEY"))
}

func provideImportService(
	memberRepo repositories.MemberRepository,
	campRepo repositories.CampRepository,
	sheets infra.SpreadsheetSource,
	progress mem.ProgressStore,
) services.ImportServiceInterface {
	return services.NewImportService(memberRepo, campRepo, sheets, progress)
}
