package canny

// String returns a pointer to the given string.
func String(v string) *string { return &v }

// StringValue returns the value of a string pointer or "" if nil.
func StringValue(v *string) string {
	if v != nil {
		return *v
	}

	return ""
}

// StringOr returns the value of a string pointer or fallback if nil.
func StringOr(v *string, fallback string) string {
	if v != nil {
		return *v
	}

	return fallback
}

// Int returns a pointer to the given int.
func Int(v int) *int { return &v }

// IntValue returns the value of an int pointer or 0 if nil.
func IntValue(v *int) int {
	if v != nil {
		return *v
	}

	return 0
}

// Bool returns a pointer to the given bool.
func Bool(v bool) *bool { return &v }

// BoolValue returns the value of a bool pointer or false if nil.
func BoolValue(v *bool) bool {
	if v != nil {
		return *v
	}

	return false
}

// Float64 returns a pointer to the given float64.
func Float64(v float64) *float64 { return &v }
