// Package config handles configuration loading for moodjourney.
//
// Configuration is a TOML file in the per-user configuration directory
// (for example ~/.config/moodjourney/config.toml) with environment
// variable expansion using the ${VAR} syntax:
//
//	[database]
//	path = "/home/me/.config/moodjourney/entries.db"
//
//	[assistant]
//	enabled = true
//	api_key = "${OPENAI_API_KEY}"
//	model = "gpt-4o-mini"
//
//	[logging]
//	level = "info"   # debug, info, warn, error
//	format = "text"  # text, json
//
// A missing config file is not an error; per-user defaults are used so
// the application works on first run with no setup.
package config
