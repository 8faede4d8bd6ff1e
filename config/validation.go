package config

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConfigRequirements lists the settings that must be non-empty in an
// environment, keyed by environment variable name.
type ConfigRequirements struct {
	Required []string
}

var (
	// Environment-specific requirements
	requirements = map[Environment]ConfigRequirements{
		Development: {Required: []string{"JWT_SECRET"}},
		Test:        {Required: []string{"JWT_SECRET"}},
		CI:          {Required: []string{"JWT_SECRET", "REDIS_HOST"}},
		Production:  {Required: []string{"JWT_SECRET", "GATEWAY_KEY_HASH", "REDIS_HOST", "OPENWEATHER_API_KEY"}},
	}

	postgresRequired = []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME"}
)

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()
	values := map[string]string{}
	for _, s := range cfg.settings() {
		values[s.env] = *s.dst
	}

	var errors []string
	missing := func(names []string) {
		for _, name := range names {
			if values[name] == "" {
				errors = append(errors, fmt.Sprintf("required setting %s is not set", name))
			}
		}
	}

	missing(requirements[env].Required)

	switch cfg.DBDriver {
	case DriverPostgres:
		missing(postgresRequired)
	case DriverSQLite:
		if env == Production {
			errors = append(errors, "sqlite driver is not allowed in production")
		}
	default:
		errors = append(errors, ValidationError{Field: "DB_DRIVER", Message: fmt.Sprintf("unsupported driver %q", cfg.DBDriver)}.Error())
	}

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		errors = append(errors, ValidationError{Field: "TIMEZONE", Message: err.Error()}.Error())
	}

	if (cfg.Storage.BucketName == "") != (cfg.Storage.Region == "") {
		errors = append(errors, "S3_BUCKET_NAME and AWS_REGION must be set together")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
