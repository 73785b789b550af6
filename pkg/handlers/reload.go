package handlers

import (
	"net/http"
	"sync"

	"jekyll-cms/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var reloadChMu sync.Mutex
var reloadCh chan struct{}

func subscribeReload() chan struct{} {
	reloadChMu.Lock()
	defer reloadChMu.Unlock()
	if reloadCh == nil {
		reloadCh = make(chan struct{})
	}
	return reloadCh
}

// NotifyReload wakes every connected preview so it refreshes after a save,
// publish, or rebuild.
func NotifyReload() {
	reloadChMu.Lock()
	defer reloadChMu.Unlock()
	if reloadCh != nil {
		close(reloadCh)
		reloadCh = nil
	}
}

// LiveReload upgrades the connection and pushes a message every time
// content changes.
func LiveReload(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Sugar.Warnw("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	// Read pump: its only job is noticing the client going away, so a
	// parked handler doesn't outlive its connection.
	disconnected := make(chan struct{})
	go func() {
		defer close(disconnected)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-disconnected:
			return
		case <-subscribeReload():
			if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
				return
			}
		}
	}
}
