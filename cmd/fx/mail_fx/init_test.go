package mail_fx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProvideMailServiceBuildsFromEnv(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_SSL", "true")
	t.Setenv("SMTP_FROM", "no-reply@flock.example.com")

	svc := provideMailService()
	assert.NotNil(t, svc)
}

func TestProvideMailServiceDefaultsPort(t *testing.T) {
	t.Setenv("SMTP_PORT", "")

	svc := provideMailService()
	assert.NotNil(t, svc)
}
