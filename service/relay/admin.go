package relay

import (
	"net/http"

	"WProject/logger"
	errs "WProject/tools/errs"

	"github.com/gin-gonic/gin"
)

// Read/delete surface over the registry. Token gating is route middleware;
// these handlers add no invariants of their own.

func (s *Server) HandleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

type sessionsResponse struct {
	Sessions []SessionStatus `json:"sessions"`
}

func (s *Server) HandleListSessions(c *gin.Context) {
	c.JSON(http.StatusOK, sessionsResponse{Sessions: s.reg.Snapshot()})
}

func (s *Server) HandleGetSession(c *gin.Context) {
	id := c.Param("id")
	status, ok := s.reg.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, errs.ErrSessionNotFound)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (s *Server) HandleCloseSession(c *gin.Context) {
	id := c.Param("id")
	if !s.reg.Close(id) {
		c.JSON(http.StatusNotFound, errs.ErrSessionNotFound)
		return
	}
	logger.Infof("[Admin] session closed session=%s", id)
	c.JSON(http.StatusOK, gin.H{"status": "closed"})
}
