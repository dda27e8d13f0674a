package middlewares

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"opal-server/internal/domain"
	authvalidator "opal-server/internal/infrastructure/auth"
	"opal-server/internal/infrastructure/metrics"
	"opal-server/internal/interfaces/httpserver/responses"
	"opal-server/internal/utils/platformerrors"
)

const principalContextKey = "principal"

// AuthMiddleware validates JWT bearer tokens issued by the identity provider
// and stores the resulting principal in the gin context.
func AuthMiddleware(validator *authvalidator.Validator, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawToken, ok := bearerToken(c)
		if !ok {
			logger.Warn().
				Str("path", c.FullPath()).
				Str("method", c.Request.Method).
				Msg("unauthenticated request")
			metrics.RecordAuth("missing")
			responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "authentication required", "d1f9c0bb-4a1c-4f76-98f2-16c1f0a9b201")
			return
		}

		claims, err := validator.Validate(c.Request.Context(), rawToken)
		if err != nil {
			logger.Error().Err(err).Msg("jwt validation failed")
			metrics.RecordAuth("invalid")
			responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "unauthorized", "8ab3fd7e-9c44-4f0a-9f6a-3f2f5f7f1f90")
			return
		}

		metrics.RecordAuth("ok")
		setPrincipal(c, principalFromClaims(claims))
		c.Next()
	}
}

// PrincipalFromContext returns the authenticated principal, if any.
func PrincipalFromContext(c *gin.Context) (domain.Principal, bool) {
	val, ok := c.Get(principalContextKey)
	if !ok {
		return domain.Principal{}, false
	}
	principal, ok := val.(domain.Principal)
	return principal, ok
}

func setPrincipal(c *gin.Context, principal domain.Principal) {
	c.Set(principalContextKey, principal)
	// expose commonly-used identity values for downstream handlers
	c.Set("user_subject", principal.Subject)
	c.Set("user_email", principal.Email)
	if principal.Subject != "" {
		c.Request.Header.Set("X-User-Subject", principal.Subject)
		c.Writer.Header().Set("X-User-Subject", principal.Subject)
	}
	if len(principal.Scopes) > 0 {
		c.Request.Header.Set("X-Scopes", strings.Join(principal.Scopes, " "))
	}
}

func principalFromClaims(claims *authvalidator.PrincipalClaims) domain.Principal {
	return domain.Principal{
		Subject:   claims.Subject,
		Issuer:    claims.Issuer,
		Email:     claims.Email,
		FirstName: claims.GivenName,
		LastName:  claims.FamilyName,
		AvatarURL: claims.Picture,
		Scopes:    claims.Scopes,
	}
}

var errMalformedAuthHeader = errors.New("malformed authorization header")

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		_ = c.Error(errMalformedAuthHeader)
		return "", false
	}
	return parts[1], true
}
