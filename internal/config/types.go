// Package config provides the site configuration: identity and contact
// values, brand tokens, embed URLs, blog feed credentials, and server
// settings. Values are layered from defaults, an optional YAML file,
// environment variables, and CLI flags.
package config

import "fmt"

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port          int    `koanf:"port"`
	Watch         bool   `koanf:"watch"`
	SessionSecret string `koanf:"session_secret"`
}

// SiteConfig holds practice identity and contact values. These are
// configuration, not literals: the render layer reads them, nothing else
// hardcodes them.
type SiteConfig struct {
	Name        string   `koanf:"name"`
	Tagline     string   `koanf:"tagline"`
	Phone       string   `koanf:"phone"`
	Email       string   `koanf:"email"`
	Address     string   `koanf:"address"`
	OfficeHours string   `koanf:"office_hours"`
	LogoPath    string   `koanf:"logo_path"`
	Socials     []Social `koanf:"socials"`
}

// Social is one footer social link. Links without a URL render as inactive
// placeholders.
type Social struct {
	Network string `koanf:"network"`
	URL     string `koanf:"url"`
}

// BrandConfig holds the color tokens. One definition, injected at the
// composition root; page variants may not redefine them.
type BrandConfig struct {
	Primary   string `koanf:"primary"`
	Secondary string `koanf:"secondary"`
	Accent    string `koanf:"accent"`
	LightBg   string `koanf:"light_bg"`
}

// EmbedsConfig holds the third-party embed endpoints. Both are opaque: the
// site passes no parameters to them and reads nothing back.
type EmbedsConfig struct {
	ContactFormURL string `koanf:"contact_form_url"`
	SchedulerURL   string `koanf:"scheduler_url"`
}

// CMSConfig holds blog content feed credentials (a Contentful space).
type CMSConfig struct {
	SpaceID     string `koanf:"space_id"`
	AccessToken string `koanf:"access_token"`
	BaseURL     string `koanf:"base_url"`
	Environment string `koanf:"environment"`
}

// Enabled reports whether the blog feed is configured. Without credentials
// the blog page renders its launching-soon state instead of querying.
func (c CMSConfig) Enabled() bool {
	return c.SpaceID != "" && c.AccessToken != ""
}

// Config is the root configuration object.
type Config struct {
	Server ServerConfig `koanf:"server"`
	Site   SiteConfig   `koanf:"site"`
	Brand  BrandConfig  `koanf:"brand"`
	Embeds EmbedsConfig `koanf:"embeds"`
	CMS    CMSConfig    `koanf:"cms"`
}

// Validate checks the minimum viable configuration.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Site.Name == "" {
		return fmt.Errorf("site.name is required")
	}
	return nil
}
