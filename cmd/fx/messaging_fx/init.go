package messaging_fx

import (
	"os"

	"go.uber.org/fx"

	"flock/internal/infra"
	"flock/internal/repositories"
	"flock/internal/services"
	"flock/pkg/utils"
)

var Module = fx.Provide(
	provideMessagingService, provideSMSGateway, provideDrafter)

func provideSMSGateway() infra.SMSGateway {
	return infra.NewHTTPSMSGateway(
		os.Getenv("SMS_ENDPOINT"),
		os.Getenv("SMS_API_KEY"),
		os.Getenv("SMS_SENDER_ID"),
	)
}

func provideDrafter() (utils.MessageDrafterInterface, error) {
	provider := os.Getenv("DRAFT_PROVIDER")
	if provider == "" {
		provider = "openai"
	}
	return utils.NewMessageDrafter(provider, os.Getenv("DRAFT_API_KEY"), os.Getenv("DRAFT_MODEL"))
}

func provideMessagingService(
	memberRepo repositories.MemberRepository,
	scopes services.ScopeResolver,
	sms infra.SMSGateway,
	mail services.IMailService,
	drafter utils.MessageDrafterInterface,
) services.MessagingServiceInterface {
	return services.NewMessagingService(memberRepo, scopes, sms, mail, drafter)
}
