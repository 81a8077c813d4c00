package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"ramsvik.no/Olsmak/pkg/realtime"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser origins are filtered by the CORS layer in front of the
	// router; the upgrade itself accepts any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Live upgrades the connection and streams change events for one tasting
// until the client goes away. The socket only ever tells clients that
// something changed; they refetch over the regular endpoints.
func (s *TastingServer) Live(c *gin.Context) {
	tastingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	tasting, err := s.tastings.GetTastingByID(c.Request.Context(), tastingID)
	if err != nil {
		s.replyError(c, err)

		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Error("error upgrading connection", zap.Uint("tasting_id", tasting.ID), zap.Error(err))

		return
	}

	client := realtime.NewClient(s.hub, conn, tasting.ID, s.logger)
	client.Serve()
}
