package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	// AppName is the name of the application.
	AppName = "magpie"
)

// Config is the environment-supplied configuration. It is parsed once
// at startup and threaded into the app; handlers never read the
// environment themselves.
type Config struct {
	// BotToken is the token for the bot.
	BotToken string `env:"BOT_TOKEN,required,notEmpty"`

	// ApplicationID is the ID of the Discord application.
	ApplicationID string `env:"APPLICATION_ID,required,notEmpty"`

	// StaffRoleID is the role that gates privileged handlers.
	StaffRoleID string `env:"STAFF_ROLE_ID"`

	// WaitlistChannelID is the channel that order messages are posted to.
	WaitlistChannelID string `env:"WAITLIST_CHANNEL_ID"`

	// WelcomeChannelID is the channel that greets new members.
	WelcomeChannelID string `env:"WELCOME_CHANNEL_ID"`

	// TicketCategoryID is the category that ticket channels are created
	// under.
	TicketCategoryID string `env:"TICKET_CATEGORY_ID"`

	// MonitoringPort is the port for the monitoring server.
	MonitoringPort string `env:"MONITORING_PORT" envDefault:"8080"`
}

// LoadConfig parses the configuration from the environment. A local
// .env file is loaded first when present.
func LoadConfig() (*Config, error) {
	// Missing .env is fine; the environment may be populated directly.
	_ = godotenv.Load()

	c := new(Config)
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}
	return c, nil
}
