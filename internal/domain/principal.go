package domain

// Principal captures the normalized identity of the current request as
// supplied by the external identity provider. It is always passed
// explicitly; nothing below the HTTP layer reads ambient auth state.
type Principal struct {
	Subject   string
	Issuer    string
	Email     string
	FirstName string
	LastName  string
	AvatarURL string
	Scopes    []string
}

// HasScope checks if the principal possesses a scope.
func (p Principal) HasScope(scope string) bool {
	for _, s := range p.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}
