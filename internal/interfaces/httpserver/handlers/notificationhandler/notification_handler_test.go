package notificationhandler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opal-server/internal/domain"
	"opal-server/internal/domain/notification"
	"opal-server/internal/interfaces/httpserver/handlers/notificationhandler"
)

type stubNotificationRepo struct {
	feed *notification.Feed
}

func (s *stubNotificationRepo) ListBySubject(ctx context.Context, subject string) (*notification.Feed, error) {
	return s.feed, nil
}

func performFeed(t *testing.T, repo *stubNotificationRepo, principal *domain.Principal) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := notificationhandler.NewNotificationHandler(notification.NewService(repo), zerolog.Nop())

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/notifications", nil)
	if principal != nil {
		c.Set("principal", *principal)
	}

	handler.Feed(c)
	return recorder
}

func TestFeed_WithoutPrincipalReturns401(t *testing.T) {
	recorder := performFeed(t, &stubNotificationRepo{}, nil)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestFeed_UnknownSubjectReturns404WithEmptyPayload(t *testing.T) {
	recorder := performFeed(t, &stubNotificationRepo{}, &domain.Principal{Subject: "auth0|ghost"})

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var body struct {
		Data  []json.RawMessage `json:"data"`
		Count int64             `json:"count"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Data)
	assert.Zero(t, body.Count)
}

func TestFeed_ReturnsNotificationsAndCount(t *testing.T) {
	repo := &stubNotificationRepo{feed: &notification.Feed{
		Notifications: []*notification.Notification{
			{ID: 1, Content: "Bob joined your workspace"},
			{ID: 2, Content: "New comment on Standup"},
		},
		Count: 2,
	}}

	recorder := performFeed(t, repo, &domain.Principal{Subject: "auth0|jane"})

	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data []struct {
			Content string `json:"content"`
		} `json:"data"`
		Count int64 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, int64(2), body.Count)
}
