package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SiteConfig carries the storefront identity used by structured-data
// markup: name, canonical base URL, contact details and social profiles.
type SiteConfig struct {
	Name         string      `yaml:"name"`
	BaseURL      string      `yaml:"base_url"`
	Description  string      `yaml:"description"`
	Email        string      `yaml:"email"`
	Phone        string      `yaml:"phone"`
	PhoneRaw     string      `yaml:"phone_raw"`
	Address      Address     `yaml:"address"`
	WorkingHours string      `yaml:"working_hours"`
	Social       SocialLinks `yaml:"social"`
	Languages    []string    `yaml:"languages"`
}

type Address struct {
	Street     string `yaml:"street"`
	City       string `yaml:"city"`
	PostalCode string `yaml:"postal_code"`
	Country    string `yaml:"country"`
}

type SocialLinks struct {
	Facebook  string `yaml:"facebook"`
	Instagram string `yaml:"instagram"`
	WhatsApp  string `yaml:"whatsapp"`
}

func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		Name:        "Smesiteli Bishkek",
		BaseURL:     "https://example.kg",
		Description: "Online store for quality kitchen and bathroom faucets in Bishkek",
		Email:       "info@smesiteli.kg",
		Phone:       "+996 (555) 123-456",
		PhoneRaw:    "+996555123456",
		Address: Address{
			Street:     "219 Chuy Avenue",
			City:       "Bishkek",
			PostalCode: "720000",
			Country:    "Kyrgyzstan",
		},
		WorkingHours: "Mon-Sat: 9:00-19:00, Sun: 10:00-17:00",
		Social: SocialLinks{
			Facebook:  "https://facebook.com/smesiteli.bishkek",
			Instagram: "https://instagram.com/smesiteli.bishkek",
			WhatsApp:  "https://wa.me/996555123456",
		},
		Languages: []string{"ru", "ky"},
	}
}

// LoadSiteConfig builds the site configuration from defaults, an optional
// YAML file (SITE_CONFIG_PATH) and a SITE_BASE_URL override, in that order.
func LoadSiteConfig() (SiteConfig, error) {
	cfg := DefaultSiteConfig()

	if path := os.Getenv("SITE_CONFIG_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read site config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse site config %s: %w", path, err)
		}
	}

	if baseURL := os.Getenv("SITE_BASE_URL"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return cfg, nil
}
