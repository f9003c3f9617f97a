package events

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/relaxing-koala/restaurant-api/middlewares"
	"github.com/relaxing-koala/restaurant-api/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler upgrades a staff dashboard connection and keeps it registered
// until the client goes away.
func Handler(c *gin.Context) {
	auth, ok := middlewares.CurrentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("websocket upgrade failed: %v", err)
		return
	}

	RegisterClient(conn, string(auth.Role))
	utils.InfoLogger.Printf("dashboard client connected (user=%d role=%s)", auth.UserID, auth.Role)

	go func() {
		defer UnregisterClient(conn)
		for {
			// Clients only listen; the read loop just detects closure.
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
