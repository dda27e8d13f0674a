package notificationres

import (
	"opal-server/internal/domain/notification"
)

// NotificationResponse represents a single feed entry
type NotificationResponse struct {
	ID        uint           `json:"id"`
	Content   string         `json:"content"`
	Payload   map[string]any `json:"payload,omitempty"`
	CreatedAt int64          `json:"created_at"`
}

// FeedResponse represents the notification feed with its badge count
type FeedResponse struct {
	Object string                 `json:"object"`
	Data   []NotificationResponse `json:"data"`
	Count  int64                  `json:"count"`
}

// NewFeedResponse creates a feed response from the domain feed
func NewFeedResponse(feed *notification.Feed) *FeedResponse {
	data := make([]NotificationResponse, 0)
	var count int64
	if feed != nil {
		count = feed.Count
		for _, n := range feed.Notifications {
			data = append(data, NotificationResponse{
				ID:        n.ID,
				Content:   n.Content,
				Payload:   n.Payload,
				CreatedAt: n.CreatedAt.Unix(),
			})
		}
	}
	return &FeedResponse{Object: "list", Data: data, Count: count}
}
