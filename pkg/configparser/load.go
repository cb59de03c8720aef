package configparser

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrNoFilePath = errors.New("no file path provided")

// LoadYamlFile reads a simple YAML file and loads its values into the
// environment. Nesting is flattened with underscores, so
//
//	server:
//	  port: 3000
//
// becomes SERVER_PORT=3000. Values already present in the environment win.
func LoadYamlFile(filepath string) error {
	if filepath == "" {
		return ErrNoFilePath
	}

	file, err := os.Open(filepath)
	if err != nil {
		return fmt.Errorf("could not open YAML file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	prefixStack := []string{}
	previousIndent := 0

	for scanner.Scan() {
		line := scanner.Text()

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		indent := 0
		for _, ch := range line {
			if ch != ' ' {
				break
			}
			indent++
		}

		// Pop sections until the stack matches the current indentation
		if indent < previousIndent {
			levelsToPop := (previousIndent - indent) / 2
			for i := 0; i < levelsToPop && len(prefixStack) > 0; i++ {
				prefixStack = prefixStack[:len(prefixStack)-1]
			}
		}
		previousIndent = indent

		// Section header ("key:" with no value)
		if strings.HasSuffix(trimmed, ":") && !strings.Contains(trimmed, ": ") {
			prefixStack = append(prefixStack, strings.TrimSuffix(trimmed, ":"))
			continue
		}

		parts := strings.SplitN(trimmed, ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)
		if value == "" {
			continue
		}

		// ${VAR:-default} substitution
		if strings.HasPrefix(value, "${") && strings.Contains(value, ":-") && strings.HasSuffix(value, "}") {
			inner := value[2 : len(value)-1]
			subParts := strings.SplitN(inner, ":-", 2)
			if len(subParts) == 2 {
				if envValue := os.Getenv(strings.TrimSpace(subParts[0])); envValue != "" {
					value = envValue
				} else {
					value = strings.TrimSpace(subParts[1])
				}
			}
		}

		fullKey := strings.ToUpper(key)
		if len(prefixStack) > 0 {
			fullKey = strings.ToUpper(strings.Join(append(append([]string{}, prefixStack...), key), "_"))
		}

		if os.Getenv(fullKey) == "" {
			if err := os.Setenv(fullKey, value); err != nil {
				return fmt.Errorf("could not set env var %s: %w", fullKey, err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading YAML file: %w", err)
	}

	return nil
}

// LoadAndParseYaml loads the YAML file into the environment (if the file
// exists) and then fills cfg from the environment using `env` and `default`
// struct tags.
func LoadAndParseYaml(filepath string, cfg any) error {
	if filepath != "" {
		// A missing file is fine: defaults and env vars still apply.
		if err := LoadYamlFile(filepath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	return ParseEnv(cfg)
}
