package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%s failed %q validation", fe.Namespace(), fe.Tag())
		}
		return err
	}

	if c.Store.Driver == DriverPostgres {
		if err := c.Store.Postgres.validate("store.postgres"); err != nil {
			return err
		}
	}
	return nil
}

func (p *PostgresConfig) validate(prefix string) error {
	if p.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if p.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if p.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if p.Port < 1 || p.Port > 65535 {
		return fmt.Errorf("%s.port must be between 1 and 65535, got %d", prefix, p.Port)
	}
	return nil
}
