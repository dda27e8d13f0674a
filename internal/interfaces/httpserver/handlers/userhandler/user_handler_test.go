package userhandler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opal-server/internal/domain"
	"opal-server/internal/domain/user"
	"opal-server/internal/interfaces/httpserver/handlers/userhandler"
	"opal-server/internal/utils/idgen"
	"opal-server/internal/utils/ptr"
)

// stubUserRepo mimics the ILIKE search across first name, last name and
// email, honoring the caller exclusion.
type stubUserRepo struct {
	profiles []*user.Profile
	subjects []string
}

func (s *stubUserRepo) FindBySubject(ctx context.Context, subject string) (*user.User, error) {
	return nil, nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, nil
}

func (s *stubUserRepo) CreateWithDefaults(ctx context.Context, usr *user.User, ws user.DefaultWorkspace) (*user.User, error) {
	return usr, nil
}

func (s *stubUserRepo) SearchByTerm(ctx context.Context, term, excludeSubject string) ([]*user.Profile, error) {
	matched := make([]*user.Profile, 0)
	lower := strings.ToLower(term)
	for i, p := range s.profiles {
		if s.subjects[i] == excludeSubject {
			continue
		}
		if strings.Contains(strings.ToLower(ptr.StringValue(p.FirstName)), lower) ||
			strings.Contains(strings.ToLower(ptr.StringValue(p.LastName)), lower) ||
			strings.Contains(strings.ToLower(p.Email), lower) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func performSearch(t *testing.T, repo *stubUserRepo, query string, principal *domain.Principal) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := userhandler.NewUserHandler(user.NewService(repo, idgen.GenerateSecureID), zerolog.Nop())

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/users/search?query="+query, nil)
	if principal != nil {
		c.Set("principal", *principal)
	}

	handler.Search(c)
	return recorder
}

func TestSearch_WithoutPrincipalReturns401(t *testing.T) {
	recorder := performSearch(t, &stubUserRepo{}, "ana", nil)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestSearch_EmptyQueryReturns400(t *testing.T) {
	recorder := performSearch(t, &stubUserRepo{}, "", &domain.Principal{Subject: "auth0|ana"})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSearch_ExcludesCallerEvenWhenMatching(t *testing.T) {
	repo := &stubUserRepo{
		profiles: []*user.Profile{
			{ID: 1, FirstName: ptr.ToString("Ana"), Email: "ana@x.com"},
			{ID: 2, FirstName: ptr.ToString("Bob"), Email: "banana@x.com"},
		},
		subjects: []string{"auth0|ana", "auth0|bob"},
	}

	recorder := performSearch(t, repo, "ana", &domain.Principal{Subject: "auth0|ana"})

	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data []struct {
			Email string `json:"email"`
		} `json:"data"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "banana@x.com", body.Data[0].Email)
	assert.Equal(t, 1, body.Total)
}

func TestSearch_NoMatchesReturns404WithEmptyList(t *testing.T) {
	repo := &stubUserRepo{
		profiles: []*user.Profile{{ID: 1, FirstName: ptr.ToString("Ana"), Email: "ana@x.com"}},
		subjects: []string{"auth0|ana"},
	}

	recorder := performSearch(t, repo, "zzz", &domain.Principal{Subject: "auth0|bob"})

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var body struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Empty(t, body.Data)
}
