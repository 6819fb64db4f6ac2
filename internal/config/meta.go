package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// It stays in sync when new fields are added to Settings.
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"reset": "ctrl+r",
			"stop":  []string{"s", "space"},
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug" || fieldName == "chime"
		case reflect.Int:
			switch fieldName {
			case "error_clear_delay":
				return DefaultErrorClearDelay
			case "max_log_files":
				return 1000
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		return "example"
	}

	return nil
}
