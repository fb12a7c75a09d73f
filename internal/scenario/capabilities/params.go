package capabilities

// GetStringParam returns a string parameter or defaultVal when missing or not a string
func GetStringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return defaultVal
}

// GetIntParam returns an integer parameter or defaultVal when missing or not a number
func GetIntParam(params map[string]interface{}, key string, defaultVal int) int {
	if v, ok := params[key]; ok {
		if n, ok := toInt(v); ok {
			return n
		}
	}
	return defaultVal
}

func toInt(v interface{}) (int, bool) {
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
