package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	authvalidator "opal-server/internal/infrastructure/auth"
)

// PathMatcher decides whether a request path requires an authenticated
// principal. Prefix rules match the prefix itself and any nested path
// beneath it; exact rules match only the full path.
type PathMatcher struct {
	prefixes []string
	exacts   []string
}

// NewPathMatcher builds a matcher from prefix and exact path rules.
// Trailing slashes on rules are ignored.
func NewPathMatcher(prefixes, exacts []string) *PathMatcher {
	m := &PathMatcher{}
	for _, p := range prefixes {
		if p = strings.TrimRight(strings.TrimSpace(p), "/"); p != "" {
			m.prefixes = append(m.prefixes, p)
		}
	}
	for _, e := range exacts {
		if e = strings.TrimRight(strings.TrimSpace(e), "/"); e != "" {
			m.exacts = append(m.exacts, e)
		}
	}
	return m
}

// Matches reports whether the path falls under any protected rule.
func (m *PathMatcher) Matches(path string) bool {
	path = strings.TrimRight(path, "/")
	if path == "" {
		path = "/"
	}
	for _, e := range m.exacts {
		if path == e {
			return true
		}
	}
	for _, p := range m.prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// ProtectedPaths enforces authentication only on paths the matcher flags.
// Everything else passes through untouched, which lets the middleware sit in
// front of mixed public/private surfaces.
func ProtectedPaths(matcher *PathMatcher, validator *authvalidator.Validator, logger zerolog.Logger) gin.HandlerFunc {
	authenticate := AuthMiddleware(validator, logger)
	return func(c *gin.Context) {
		if !matcher.Matches(c.Request.URL.Path) {
			c.Next()
			return
		}
		if _, ok := PrincipalFromContext(c); ok {
			c.Next()
			return
		}
		authenticate(c)
	}
}
