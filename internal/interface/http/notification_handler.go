package handlers

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rentwise/rentwise/internal/infrastructure/redisbus"
)

// NotificationHandler bridges the Redis broadcast channel onto an SSE
// stream so dashboards receive lifecycle events as they happen.
type NotificationHandler struct {
	Bus    *redisbus.Broadcaster
	Logger *logrus.Logger
}

func NewNotificationHandler(bus *redisbus.Broadcaster, logger *logrus.Logger) *NotificationHandler {
	return &NotificationHandler{Bus: bus, Logger: logger}
}

// Stream subscribes the client to lifecycle events. A heartbeat comment is
// written every 30s so idle connections are not reaped by proxies.
func (h *NotificationHandler) Stream(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	sub := h.Bus.Subscribe(c.Request.Context())
	defer func() {
		if err := sub.Close(); err != nil && h.Logger != nil {
			h.Logger.WithError(err).Warn("failed to close notification subscription")
		}
	}()

	ch := sub.Channel()
	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("notification", msg.Payload)
			return true
		case <-heartbeat.C:
			c.SSEvent("heartbeat", time.Now().UTC().Format(time.RFC3339))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
