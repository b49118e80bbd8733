// Package web provides the HTTP server of the blog API: routing, the
// bearer-auth gate, static asset serving and background maintenance jobs.
package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"blog-api/config"
	"blog-api/logger"
	"blog-api/storage"
	"blog-api/util/common"
	"blog-api/web/controller"
	"blog-api/web/job"
	"blog-api/web/middleware"
	"blog-api/web/service"
)

// Server owns the gin engine, the listener and the cron scheduler.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	auth     *controller.AuthController
	category *controller.CategoryController
	article  *controller.ArticleController

	authService *service.AuthService
	userService *service.UserService
	assets      *storage.DiskStore

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initRouter initializes gin, registers middleware and controllers and
// returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	s.authService = service.NewAuthService()
	s.userService = &service.UserService{}
	s.assets = storage.NewDiskStore(config.GetAssetFolder())

	api := engine.Group("/api")
	guarded := api.Group("", middleware.JwtAuth(s.authService, s.userService))

	s.auth = controller.NewAuthController(api, guarded, s.authService)
	s.category = controller.NewCategoryController(guarded)
	s.article = controller.NewArticleController(guarded, s.assets)

	// Stored asset paths are public by contract
	engine.Static("/storage", config.GetAssetFolder())

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"meta": gin.H{"code": http.StatusNotFound, "status": "error", "message": "Not found"},
			"data": nil,
		})
	})

	return engine, nil
}

// startTask schedules the background maintenance jobs.
func (s *Server) startTask() {
	s.cron.AddJob("@daily", job.NewOrphanThumbnailJob(s.assets))
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(config.GetWebListen(), strconv.Itoa(config.GetWebPort()))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("Web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	s.startTask()

	return nil
}

// Stop gracefully shuts down the web server and the cron scheduler.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }
