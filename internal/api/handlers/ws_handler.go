package handlers

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/oasis/internal/config"
	"github.com/linskybing/oasis/internal/logging"
	"github.com/linskybing/oasis/internal/notify"
	"github.com/linskybing/oasis/pkg/response"
	"github.com/linskybing/oasis/pkg/utils"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(config.CorsOrigins, origin)
	},
}

type NoticeHandler struct {
	notifier notify.Notifier
}

func NewNoticeHandler(notifier notify.Notifier) *NoticeHandler {
	return &NoticeHandler{notifier: notifier}
}

// DrainNotices godoc
// @Summary Pending notices of the caller
// @Description Returns the queued notices and clears them; each one is shown once.
// @Tags notices
// @Produce json
// @Security BearerAuth
// @Success 200 {array} notify.Notice
// @Router /notices [get]
func (h *NoticeHandler) DrainNotices(c *gin.Context) {
	id := utils.IdentityFromContext(c)
	if id == nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	notices, err := h.notifier.Drain(c.Request.Context(), id.UserID)
	if err != nil {
		logging.FromContext(c).WithError(err).Error("failed to drain notices")
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, notices)
}

// StreamNotices pushes notices to the caller over a websocket as they are
// raised. Queued notices are flushed first.
func (h *NoticeHandler) StreamNotices(c *gin.Context) {
	id := utils.IdentityFromContext(c)
	if id == nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	log := logging.FromContext(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer func() { _ = conn.Close() }()

	ctx := c.Request.Context()
	notices, cancel, err := h.notifier.Subscribe(ctx, id.UserID)
	if err != nil {
		log.WithError(err).Error("notice subscription failed")
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "subscription failed"))
		return
	}
	defer cancel()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// The reader only exists to process pongs and notice the close frame.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.WithError(err).Debug("notice stream closed")
				}
				return
			}
		}
	}()

	write := func(n notify.Notice) bool {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(n) == nil
	}

	if pending, err := h.notifier.Drain(ctx, id.UserID); err == nil {
		for _, n := range pending {
			if !write(n) {
				return
			}
		}
	}

	pingTicker := time.NewTicker(pingPeriod)
	defer pingTicker.Stop()

	for {
		select {
		case n, ok := <-notices:
			if !ok {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if !write(n) {
				return
			}
			// Delivered live, so it must not show up again on the next page load.
			_, _ = h.notifier.Drain(ctx, id.UserID)
		case <-pingTicker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-closed:
			return
		case <-ctx.Done():
			return
		}
	}
}
