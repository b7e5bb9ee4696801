package config

// DefaultConfigFile is the config file looked up in the working directory
// when no --config flag is given.
const DefaultConfigFile = "goodplace.yaml"

// Defaults returns the built-in configuration layer. Real deployments
// override the identity values in goodplace.yaml; the defaults keep a dev
// checkout presentable without one.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"server.port":  8760,
		"server.watch": false,
		// Development fallback; deployments set GOODPLACE_SERVER__SESSION_SECRET.
		"server.session_secret": "goodplace-dev-secret-change-in-production",

		"site.name":         "GoodPlace Mental Health Services",
		"site.tagline":      "A path to healing and a good place together.",
		"site.phone":        "(800) 555-1234",
		"site.email":        "admin@goodplacemh.example",
		"site.address":      "600 Twelve Oaks Center Drive, Suite 207, Wayzata, MN 55391",
		"site.office_hours": "Mon-Fri, 9am-5pm CST",
		"site.logo_path":    "/static/img/logo.svg",

		// Profiles are not live yet; empty URLs render as placeholders.
		"site.socials": []map[string]interface{}{
			{"network": "Facebook", "url": ""},
			{"network": "Instagram", "url": ""},
			{"network": "LinkedIn", "url": ""},
		},

		"brand.primary":   "#1A435A",
		"brand.secondary": "#4CAF50",
		"brand.accent":    "#FF9800",
		"brand.light_bg":  "#F4F9FA",

		"embeds.contact_form_url": "",
		"embeds.scheduler_url":    "",

		"cms.space_id":     "",
		"cms.access_token": "",
		"cms.base_url":     "https://cdn.contentful.com",
		"cms.environment":  "master",
	}
}
