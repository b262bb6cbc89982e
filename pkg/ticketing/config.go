package ticketing

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// Config is the immutable ticketing configuration. It is loaded once at
// startup and passed into NewService; nothing mutates it at runtime.
type Config struct {
	// ServerName is the display name of the community, used in the panel
	// embed and the bot presence.
	ServerName string `json:"SERVER_NAME"`

	// TicketCategoryName is the base name for the per-type active ticket
	// categories, e.g. "Tickets" yields "Purchase Tickets".
	TicketCategoryName string `json:"TICKET_CATEGORY_NAME"`

	// ArchiveCategoryName is the category closed tickets are moved into.
	ArchiveCategoryName string `json:"ARCHIVE_CATEGORY_NAME"`

	// TranscriptsCategoryName is the category the transcript log channel
	// lives under.
	TranscriptsCategoryName string `json:"TRANSCRIPTS_CATEGORY_NAME"`

	// LogChannelName is the staff visible channel transcripts are posted to.
	LogChannelName string `json:"LOG_CHANNEL_NAME"`

	// WelcomeMessage is the description of the ticket panel embed.
	WelcomeMessage string `json:"DEFAULT_TICKET_MESSAGE"`

	// AccentColor is the embed accent colour.
	AccentColor int `json:"PEARL_WHITE"`

	// MaxTicketsPerUser is the per-user cap of open tickets per type.
	MaxTicketsPerUser int `json:"MAX_TICKETS_PER_USER"`
}

// DefaultConfig returns the configuration used when no config file is
// provided.
func DefaultConfig() Config {
	return Config{
		ServerName:              "lunar's cave",
		TicketCategoryName:      "Tickets",
		ArchiveCategoryName:     "Archived Tickets",
		TranscriptsCategoryName: "Transcripts",
		LogChannelName:          "logs",
		WelcomeMessage:          "\U0001F39F Welcome to the support system! Please select a category to proceed.",
		AccentColor:             0xEAEAEA,
		MaxTicketsPerUser:       1,
	}
}

// LoadConfig reads a JSONC configuration file, laying the values over the
// defaults. Unset fields keep their default.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}

	if err := json.Unmarshal(jsonc.ToJSON(b), &cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the service cannot run with.
func (c Config) Validate() error {
	if c.TicketCategoryName == "" {
		return fmt.Errorf("ticket category name must not be empty")
	}
	if c.ArchiveCategoryName == "" {
		return fmt.Errorf("archive category name must not be empty")
	}
	if c.TranscriptsCategoryName == "" {
		return fmt.Errorf("transcripts category name must not be empty")
	}
	if c.LogChannelName == "" {
		return fmt.Errorf("log channel name must not be empty")
	}
	if c.MaxTicketsPerUser < 1 {
		return fmt.Errorf("max tickets per user must be at least 1, got %d", c.MaxTicketsPerUser)
	}
	return nil
}
