// Copyright (c) 2024 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package nets

import (
	"strings"
	"testing"
)

func TestValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", false},
		{"ordinary", "Test/Name_123", true},
		{"leading slash", "/test", false},
		{"star not allowed", "Test*Name", false},
		{"too long", strings.Repeat("a", 256), false},
		{"just under limit", strings.Repeat("a", 255), true},
		{"single letter", "p", true},
		{"leading digit", "1p", false},
		{"leading underscore", "_p", false},
		{"digits and underscore", "p_1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidName(tt.input); got != tt.want {
				t.Errorf("ValidName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
