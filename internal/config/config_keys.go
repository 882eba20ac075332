// config_keys.go provides key-value access to configuration settings for
// the "cafeval config" command, where settings are addressed by dotted keys
// such as "log.enabled".
//
// Get and All report effective values (environment overrides and defaults
// applied); Set only changes the file-backed value.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{"author.name", "log.enabled", "log.limit", "output.colour"}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the effective value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "author.name":
		return c.AuthorName(), nil
	case "log.enabled":
		return strconv.FormatBool(c.LogEnabled()), nil
	case "log.limit":
		return strconv.Itoa(c.LogLimit()), nil
	case "output.colour":
		return strconv.FormatBool(c.Colour()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "author.name":
		c.Author.Name = value
	case "log.enabled":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		c.Log.Enabled = &b
	case "log.limit":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinLogLimit || n > MaxLogLimit {
			return fmt.Errorf("%w: log.limit must be an integer between %d and %d", ErrInvalidValue, MinLogLimit, MaxLogLimit)
		}
		c.Log.Limit = &n
	case "output.colour":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		c.Output.Colour = &b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

func parseBool(key, value string) (bool, error) {
	switch strings.ToLower(value) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: %s must be true or false", ErrInvalidValue, key)
}

// All returns all effective configuration values as a map.
func (c *Config) All() map[string]string {
	all := make(map[string]string, len(ValidKeys()))
	for _, k := range ValidKeys() {
		v, _ := c.Get(k)
		all[k] = v
	}
	return all
}

// IsSet returns true if the key has an explicit value in the config file.
func (c *Config) IsSet(key string) bool {
	switch key {
	case "author.name":
		return c.Author.Name != ""
	case "log.enabled":
		return c.Log.Enabled != nil
	case "log.limit":
		return c.Log.Limit != nil
	case "output.colour":
		return c.Output.Colour != nil
	default:
		return false
	}
}
