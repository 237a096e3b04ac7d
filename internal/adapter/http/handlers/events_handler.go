package handlers

import (
	"net/http"
	"time"

	"meraki_estimator/internal/infrastructure/events"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const defaultHeartbeat = 25 * time.Second

// EventsHandler streams bus firings to browsers as server-sent events. The
// payload is the bus revision; clients re-read whatever they display.
type EventsHandler struct {
	bus       *events.Bus
	heartbeat time.Duration
}

func NewEventsHandler(bus *events.Bus) *EventsHandler {
	return &EventsHandler{bus: bus, heartbeat: defaultHeartbeat}
}

// Stream godoc
// @Summary  Server-sent "estimates-changed" events
// @Tags     events
// @Produce  text/event-stream
// @Router   /events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	changed := make(chan struct{}, 1)
	unsubscribe := h.bus.Subscribe(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	c.SSEvent("ready", h.bus.Revision())
	c.Writer.Flush()
	logrus.WithField("subscribers", h.bus.Subscribers()).Debug("[http][events] client connected")

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			logrus.Debug("[http][events] client disconnected")
			return
		case <-changed:
			c.SSEvent(events.EstimatesChanged, h.bus.Revision())
		case <-heartbeat.C:
			c.SSEvent("heartbeat", h.bus.Revision())
		}
		c.Writer.Flush()
	}
}
