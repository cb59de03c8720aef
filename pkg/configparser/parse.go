package configparser

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"
)

var ErrNotStructPointer = errors.New("config must be a non-nil pointer to a struct")

// ParseEnv walks cfg recursively and fills every field carrying an `env` tag
// from the environment, falling back to the `default` tag when the variable
// is unset. Supported field types: string, bool, ints, floats, time.Duration.
func ParseEnv(cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return ErrNotStructPointer
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return ErrNotStructPointer
	}

	return parseStruct(v)
}

func parseStruct(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}

		// Nested config sections
		if field.Kind() == reflect.Struct && field.Type() != reflect.TypeOf(time.Duration(0)) && t.Field(i).Tag.Get("env") == "" {
			if err := parseStruct(field); err != nil {
				return err
			}
			continue
		}

		envName := t.Field(i).Tag.Get("env")
		if envName == "" {
			continue
		}

		value := os.Getenv(envName)
		if value == "" {
			value = t.Field(i).Tag.Get("default")
		}
		if value == "" {
			continue
		}

		if err := setField(field, value); err != nil {
			return fmt.Errorf("field %s (%s): %w", t.Field(i).Name, envName, err)
		}
	}

	return nil
}

func setField(field reflect.Value, value string) error {
	// time.Duration before the generic int case
	if field.Type() == reflect.TypeOf(time.Duration(0)) {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid bool %q: %w", value, err)
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", value, err)
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid unsigned integer %q: %w", value, err)
		}
		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid float %q: %w", value, err)
		}
		field.SetFloat(f)
	default:
		return fmt.Errorf("unsupported field kind %s", field.Kind())
	}

	return nil
}
