package relay

import (
	"WProject/config"
	mid "WProject/middleware"
	"WProject/tools/safe"

	"github.com/gin-gonic/gin"
)

// Server ties the registry to the HTTP surface. All state lives in the
// registry; the server itself is wiring.
type Server struct {
	cfg *config.Config
	reg *Registry
}

func NewServer(cfg *config.Config) *Server {
	safe.MustNotNil(cfg, "cfg")
	return &Server{
		cfg: cfg,
		reg: NewRegistry(),
	}
}

func (s *Server) Registry() *Registry { return s.reg }

// RegisterRoutes mounts the relay on a gin engine. The health probe is the
// only unconditionally open route; everything else sits behind the token
// gate (a no-op in open mode).
func (s *Server) RegisterRoutes(r gin.IRoutes) {
	open := mid.RouteOpt{}
	authed := mid.RouteOpt{IsAuth: true, Token: s.cfg.Token}

	mid.GET(r, "/health", s.HandleHealth, open)
	mid.GET(r, "/sessions", s.HandleListSessions, authed)
	mid.GET(r, "/sessions/:id", s.HandleGetSession, authed)
	mid.DELETE(r, "/sessions/:id", s.HandleCloseSession, authed)
	mid.GET(r, "/ws", s.HandleWS, authed)
}
