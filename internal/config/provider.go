package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// MissingKeyError is returned when a key is absent and no default was given.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("config: missing required key %q", e.Key)
}

// InvalidValueError is returned when a value cannot be read as the asked type.
type InvalidValueError struct {
	Key   string
	Value string
	Type  string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("config: key %q has value %q, expected %s", e.Key, e.Value, e.Type)
}

// Provider reads configuration values. A default, when passed, is returned
// for absent keys instead of a MissingKeyError.
type Provider interface {
	Get(key string, def ...string) (string, error)
	GetNumber(key string, def ...int) (int, error)
	GetBoolean(key string, def ...bool) (bool, error)
	Has(key string) bool
}

type lookupFunc func(key string) (string, bool)

type provider struct {
	lookup lookupFunc
}

// NewEnvProvider reads from the process environment.
func NewEnvProvider() Provider {
	return provider{lookup: os.LookupEnv}
}

// NewMapProvider reads from a fixed map.
func NewMapProvider(values map[string]string) Provider {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return provider{lookup: func(key string) (string, bool) {
		v, ok := copied[key]
		return v, ok
	}}
}

func (p provider) Has(key string) bool {
	_, ok := p.lookup(key)
	return ok
}

func (p provider) Get(key string, def ...string) (string, error) {
	if value, ok := p.lookup(key); ok {
		return value, nil
	}
	if len(def) > 0 {
		return def[0], nil
	}
	return "", &MissingKeyError{Key: key}
}

func (p provider) GetNumber(key string, def ...int) (int, error) {
	value, ok := p.lookup(key)
	if !ok {
		if len(def) > 0 {
			return def[0], nil
		}
		return 0, &MissingKeyError{Key: key}
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &InvalidValueError{Key: key, Value: value, Type: "number"}
	}
	return n, nil
}

func (p provider) GetBoolean(key string, def ...bool) (bool, error) {
	value, ok := p.lookup(key)
	if !ok {
		if len(def) > 0 {
			return def[0], nil
		}
		return false, &MissingKeyError{Key: key}
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off", "":
		return false, nil
	}
	return false, &InvalidValueError{Key: key, Value: value, Type: "boolean"}
}
