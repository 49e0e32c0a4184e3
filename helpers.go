package sdk

import (
	"fmt"
)

// GetString safely extracts a string value from Settings.
// The second return is false when the key is absent or holds a non-string.
func GetString(settings Settings, key string) (string, bool) {
	v, ok := settings[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetInt safely extracts an int value from Settings.
// It accepts int, int64 and float64, since settings decoded from JSON
// arrive with numbers as float64.
func GetInt(settings Settings, key string) (int, bool) {
	v, ok := settings[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// GetFloat safely extracts a float64 value from Settings.
// The second return is false when the key is absent or holds a non-number.
func GetFloat(settings Settings, key string) (float64, bool) {
	v, ok := settings[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// GetBool safely extracts a bool value from Settings.
// The second return is false when the key is absent or holds a non-bool.
func GetBool(settings Settings, key string) (bool, bool) {
	v, ok := settings[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// GetStringSlice safely extracts a []string value from Settings.
// The second return is false when the key is absent or any element is not a string.
func GetStringSlice(settings Settings, key string) ([]string, bool) {
	v, ok := settings[key]
	if !ok {
		return nil, false
	}
	// JSON arrays decode as []interface{}, so each element is checked
	arr, ok := v.([]interface{})
	if !ok {
		return nil, false
	}
	result := make([]string, 0, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		result = append(result, s)
	}
	return result, true
}

// MustGetString extracts a string value from Settings or returns an error.
// Use this when the field is required.
func MustGetString(settings Settings, key string) (string, error) {
	s, ok := GetString(settings, key)
	if !ok {
		return "", &ConfigError{
			Field: key,
			Err:   fmt.Errorf("required string field '%s' is missing or not a string", key),
		}
	}
	return s, nil
}

// MustGetInt extracts an int value from Settings or returns an error.
// Use this when the field is required.
func MustGetInt(settings Settings, key string) (int, error) {
	i, ok := GetInt(settings, key)
	if !ok {
		return 0, &ConfigError{
			Field: key,
			Err:   fmt.Errorf("required int field '%s' is missing or not a number", key),
		}
	}
	return i, nil
}

// MustGetBool extracts a bool value from Settings or returns an error.
// Use this when the field is required.
func MustGetBool(settings Settings, key string) (bool, error) {
	b, ok := GetBool(settings, key)
	if !ok {
		return false, &ConfigError{
			Field: key,
			Err:   fmt.Errorf("required bool field '%s' is missing or not a boolean", key),
		}
	}
	return b, nil
}

// GetStringDefault extracts a string value from Settings with a default.
// Missing or mistyped keys fall back to def.
func GetStringDefault(settings Settings, key, defaultValue string) string {
	s, ok := GetString(settings, key)
	if !ok {
		return defaultValue
	}
	return s
}

// GetIntDefault extracts an int value from Settings with a default.
// Missing or mistyped keys fall back to def.
func GetIntDefault(settings Settings, key string, defaultValue int) int {
	i, ok := GetInt(settings, key)
	if !ok {
		return defaultValue
	}
	return i
}

// GetBoolDefault extracts a bool value from Settings with a default.
// Missing or mistyped keys fall back to def.
func GetBoolDefault(settings Settings, key string, defaultValue bool) bool {
	b, ok := GetBool(settings, key)
	if !ok {
		return defaultValue
	}
	return b
}
