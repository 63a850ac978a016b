package config

import "slices"

// RedactedConfig returns a copy of cfg with secrets replaced by "***", for
// logging the active configuration at startup.
func RedactedConfig(cfg *Config) Config {
	out := *cfg

	redact(&out.Database.DSN)
	redact(&out.Database.Password)
	redact(&out.Redis.Password)
	redact(&out.S3.AccessKey)
	redact(&out.S3.SecretKey)
	redact(&out.Notify.TelegramToken)
	redact(&out.Notify.DiscordWebhookURL)

	out.Auth.SessionKeys = make([]string, len(cfg.Auth.SessionKeys))
	for i := range out.Auth.SessionKeys {
		out.Auth.SessionKeys[i] = redacted
	}

	// Copy slices so callers cannot mutate the original through the redacted
	// copy.
	out.Server.CORSOrigins = slices.Clone(cfg.Server.CORSOrigins)
	out.Dashboard.FeaturedSports = slices.Clone(cfg.Dashboard.FeaturedSports)

	return out
}

const redacted = "***"

// redact replaces a non-empty string with the redacted placeholder.
func redact(s *string) {
	if *s != "" {
		*s = redacted
	}
}
