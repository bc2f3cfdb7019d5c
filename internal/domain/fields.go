package domain

import "strings"

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
