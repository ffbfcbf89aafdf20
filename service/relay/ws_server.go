package relay

import (
	"net"
	"net/http"
	"strings"
	"sync"

	"WProject/logger"
	errs "WProject/tools/errs"
	"WProject/tools/ids"
	"WProject/tools/safe"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// HandleWS is the websocket endpoint. The token gate has already run as
// route middleware; role and session validation happen here, before the
// upgrade, so bad handshakes cost no socket state.
func (s *Server) HandleWS(c *gin.Context) {
	role, err := ParseRole(c.Query("role"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errs.ErrInvalidRole)
		return
	}

	// Voyager must name a session; Horizon may omit one and get a code assigned.
	session := strings.TrimSpace(c.Query("session"))
	if role == RoleVoyager && session == "" {
		c.JSON(http.StatusBadRequest, errs.ErrMissingSession)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Infof("[HandleWS] upgrade websocket error: %v", err)
		return
	}

	connID := ids.NewConnID()
	q := NewOutbound()

	sessionID, replaced, err := s.reg.Join(session, role, q)
	if err != nil {
		// cannot happen past the pre-upgrade validation; close defensively
		logger.Errorf("[HandleWS] join failed conn=%s: %v", connID, err)
		_ = ws.Close()
		return
	}
	if replaced {
		logger.Warnf("[HandleWS] horizon replaced existing connection session=%s conn=%s", sessionID, connID)
	}
	logger.Infof("[HandleWS] client connected session=%s role=%s conn=%s remote=%s",
		sessionID, role, connID, ws.RemoteAddr())

	// Leave must run exactly once no matter which side dies first; both the
	// reader below and the writer pump funnel through this.
	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			s.reg.Leave(sessionID, role, q)
			q.Close()
			_ = ws.Close()
			logger.Infof("[HandleWS] client disconnected session=%s role=%s conn=%s", sessionID, role, connID)
		})
	}

	// A Horizon that omitted its id learns the generated one before any
	// relaying starts. The push is FIFO-ordered ahead of relayed frames.
	if role == RoleHorizon {
		if err := q.Push(BuildSessionAssigned(sessionID)); err != nil {
			logger.Warnf("[HandleWS] failed to queue session_assigned session=%s", sessionID)
			cleanup()
			return
		}
	}

	safe.Go("relay.writePump", func() {
		writePump(ws, q)
		cleanup()
	})

	// ---- read loop: only reads, never writes; exit means cleanup ----
	for {
		mt, data, rerr := ws.ReadMessage()
		if rerr != nil {
			if websocket.IsCloseError(rerr,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseNoStatusReceived,
			) {
				logger.Infof("[WS] peer closed session=%s conn=%s err=%v", sessionID, connID, rerr)
			} else if ne, ok := rerr.(net.Error); ok && ne.Timeout() {
				logger.Infof("[WS] read timeout session=%s conn=%s err=%v", sessionID, connID, rerr)
			} else {
				logger.Infof("[WS] read err session=%s conn=%s err=%v", sessionID, connID, rerr)
			}
			break
		}
		if mt != websocket.TextMessage && mt != websocket.BinaryMessage {
			continue
		}
		s.reg.Route(sessionID, role, Frame{MsgType: mt, Data: data}, q)
	}

	cleanup()
}
