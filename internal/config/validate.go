package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be > 0 (got %v)", c.Auth.TokenTTL)
	}

	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be between 4 and 31 (got %d)", c.Auth.PasswordHashCost)
	}

	if len(c.Admin.Secret) < 16 {
		return fmt.Errorf("admin.secret must be at least 16 characters (got %d)", len(c.Admin.Secret))
	}

	if err := c.WhatsApp.validate(); err != nil {
		return fmt.Errorf("whatsapp: %w", err)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	return nil
}

func (w WhatsAppConfig) validate() error {
	u, err := url.Parse(w.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api_url %q is not a valid absolute URL", w.APIURL)
	}

	if w.Token == "" {
		return fmt.Errorf("token must not be empty (use %s until onboarding completes)", PendingConfiguration)
	}
	if w.PhoneID == "" {
		return fmt.Errorf("phone_id must not be empty (use %s until onboarding completes)", PendingConfiguration)
	}

	if w.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", w.Timeout)
	}

	return nil
}
