package middlewares

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathMatcher(t *testing.T) {
	matcher := NewPathMatcher(
		[]string{"/dashboard", "/payment"},
		[]string{"/api/payment"},
	)

	tests := []struct {
		path    string
		matches bool
	}{
		{"/dashboard", true},
		{"/dashboard/", true},
		{"/dashboard/ws_abc/folders", true},
		{"/payment", true},
		{"/payment/checkout", true},
		{"/api/payment", true},
		{"/api/payment/", true},
		{"/", false},
		{"/dashboards", false},
		{"/api/payments", false},
		{"/api/payment/webhook", false},
		{"/auth/callback", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.matches, matcher.Matches(tt.path))
		})
	}
}

func TestPathMatcher_IgnoresBlankRules(t *testing.T) {
	matcher := NewPathMatcher([]string{"", "  ", "/dashboard/"}, []string{""})

	assert.True(t, matcher.Matches("/dashboard/home"))
	assert.False(t, matcher.Matches("/anything"))
}
