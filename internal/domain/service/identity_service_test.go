package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveStaffName(t *testing.T) {
	tests := []struct {
		name        string
		displayName string
		email       string
		want        string
	}{
		{name: "display name wins", displayName: "Ana", email: "ana@example.com", want: "Ana"},
		{name: "email fallback", displayName: "", email: "ana@example.com", want: "ana@example.com"},
		{name: "unknown fallback", displayName: "", email: "", want: UnknownStaffName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveStaffName(tt.displayName, tt.email))
		})
	}
}
