package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"lifelog-engine/internal/middleware"
	parseHTTP "lifelog-engine/internal/parse/delivery/http"
	profileHTTP "lifelog-engine/internal/profile/delivery/http"
	varsHTTP "lifelog-engine/internal/vars/delivery/http"
	"lifelog-engine/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin  *gin.Engine
	l    log.Logger
	port int
	mode string

	mw middleware.Middleware

	parseHandler   parseHTTP.Handler
	varsHandler    varsHTTP.Handler
	profileHandler profileHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port int
	Mode string

	Middleware middleware.Middleware

	ParseHandler   parseHTTP.Handler
	VarsHandler    varsHTTP.Handler
	ProfileHandler profileHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:            gin.New(),
		l:              logger,
		port:           cfg.Port,
		mode:           cfg.Mode,
		mw:             cfg.Middleware,
		parseHandler:   cfg.ParseHandler,
		varsHandler:    cfg.VarsHandler,
		profileHandler: cfg.ProfileHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.parseHandler == nil {
		return errors.New("parse handler is required")
	}
	if srv.varsHandler == nil {
		return errors.New("variables handler is required")
	}
	if srv.profileHandler == nil {
		return errors.New("profile handler is required")
	}
	return nil
}
