package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
)

// timezonePattern keeps the value safe to splice into the inline php script.
var timezonePattern = regexp.MustCompile(`^[A-Za-z0-9_+\-/]+$`)

// longTimeout is the threshold above which Warnings flags php.timeout.
const longTimeout = time.Minute

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("php.binary", c.PHP.Binary, notEmpty),
		criterio.Run("php.timezone", c.PHP.Timezone, validTimezone),
		criterio.Run("php.timeout", c.PHP.Timeout, positiveDuration),
		criterio.Run("collector.workers", c.Collector.Workers, atLeastOne),
		c.validateDisabled(),
	)
}

// ValidateDeep runs Validate and then checks that configPath, if set, is a
// readable file. A missing file is fine; defaults are used.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return validateConfigFile(configPath)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.PHP.Timeout > longTimeout {
		warnings = append(warnings, ValidationWarning{
			Category: "PHP",
			Item:     "timeout",
			Message:  fmt.Sprintf("%s is long; a hung interpreter will block resolution for that long", c.PHP.Timeout),
		})
	}

	for i, p := range c.Facts.Disabled {
		if p == "*" || p == "**" {
			warnings = append(warnings, ValidationWarning{
				Category: "Facts",
				Item:     fmt.Sprintf("disabled[%d]", i),
				Message:  "pattern disables every fact",
			})
		}
	}

	return warnings
}

func (c *Config) validateDisabled() error {
	var errs criterio.FieldErrorsBuilder
	for i, p := range c.Facts.Disabled {
		if !doublestar.ValidatePattern(p) {
			errs = errs.Append(fmt.Sprintf("facts.disabled[%d]", i), fmt.Errorf("invalid pattern %q", p))
		}
	}
	return errs.ToError()
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func notEmpty(s string) error {
	if s == "" {
		return errors.New("cannot be empty")
	}
	return nil
}

func validTimezone(s string) error {
	if !timezonePattern.MatchString(s) {
		return fmt.Errorf("invalid timezone %q", s)
	}
	return nil
}

func positiveDuration(d time.Duration) error {
	if d <= 0 {
		return errors.New("must be greater than zero")
	}
	return nil
}

func atLeastOne(n int) error {
	if n < 1 {
		return errors.New("must be at least 1")
	}
	return nil
}
