package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SaveGlobal writes a key-value pair to the global config file, creating
// it if needed.
func SaveGlobal(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	path := filepath.Join(home, ".config", GlobalConfigDir, GlobalFileName)

	existing := loadFile(path)
	existing[key] = parseValue(value)

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(existing)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// SaveLocal writes a key-value pair to the local config file in the git
// root.
func SaveLocal(gitRoot, key, value string) error {
	if gitRoot == "" {
		return fmt.Errorf("not inside a git repository")
	}
	if err := validateKey(key); err != nil {
		return err
	}

	path := filepath.Join(gitRoot, LocalFileName)

	existing := loadFile(path)
	existing[key] = parseValue(value)

	data, err := yaml.Marshal(existing)
	if err != nil {
		return err
	}
	// Local config is shared with the repo and should be readable.
	return os.WriteFile(path, data, 0o644)
}

// DeleteGlobal removes a key from the global config file. Missing files
// and keys are not errors.
func DeleteGlobal(key string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	path := filepath.Join(home, ".config", GlobalConfigDir, GlobalFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var existing map[string]interface{}
	if err := yaml.Unmarshal(data, &existing); err != nil {
		return nil
	}

	delete(existing, key)

	data, err = yaml.Marshal(existing)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func validateKey(key string) error {
	if _, ok := Defaults[key]; !ok {
		return fmt.Errorf("unknown config key: %s\n\nValid keys: %s",
			key, strings.Join(Keys(), ", "))
	}
	return nil
}

func loadFile(path string) map[string]interface{} {
	var existing map[string]interface{}
	if data, err := os.ReadFile(path); err == nil {
		_ = yaml.Unmarshal(data, &existing)
	}
	if existing == nil {
		existing = make(map[string]interface{})
	}
	return existing
}

// parseValue converts string values to natural YAML types.
func parseValue(value string) interface{} {
	switch strings.ToLower(value) {
	case "true":
		return true
	case "false":
		return false
	}
	return value
}
