package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// loadFromEnvironment fills the config from `env` struct tags, falling back
// to the `default` tag when the variable is unset. Nested structs are walked
// recursively.
func loadFromEnvironment(config *Config) error {
	return loadFields(reflect.ValueOf(config).Elem())
}

func loadFields(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}

		if field.Kind() == reflect.Struct && field.Type() != durationType {
			if err := loadFields(field); err != nil {
				return err
			}
			continue
		}

		envTag := t.Field(i).Tag.Get("env")
		if envTag == "" {
			continue
		}

		raw := os.Getenv(envTag)
		if raw == "" {
			raw = t.Field(i).Tag.Get("default")
		}
		if raw == "" {
			continue
		}

		if err := parseInto(field, raw, envTag); err != nil {
			return fmt.Errorf("failed to set field %s: %w", t.Field(i).Name, err)
		}
	}

	return nil
}

// parseInto converts raw into the field's type. The config only carries
// strings, bools, ints and durations, so anything else is a programming
// error surfaced at startup.
func parseInto(field reflect.Value, raw, envName string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %s", envName, raw)
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)

	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %s", envName, raw)
		}
		field.SetBool(b)

	case reflect.Int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %s", envName, raw)
		}
		field.SetInt(int64(n))

	default:
		return fmt.Errorf("unsupported field type %s for %s", field.Kind(), envName)
	}

	return nil
}
