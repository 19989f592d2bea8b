package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devportfolio/portfolio-backend/config"
	httpapi "github.com/devportfolio/portfolio-backend/internal/api/http"
	apimiddleware "github.com/devportfolio/portfolio-backend/internal/api/http/middleware"
	authhttp "github.com/devportfolio/portfolio-backend/internal/auth/http"
	authmw "github.com/devportfolio/portfolio-backend/internal/auth/middleware"
	authservice "github.com/devportfolio/portfolio-backend/internal/auth/service"
	"github.com/devportfolio/portfolio-backend/internal/auth/session"
	projecthttp "github.com/devportfolio/portfolio-backend/internal/projects/http"
	projectrepo "github.com/devportfolio/portfolio-backend/internal/projects/repository"
	projectservice "github.com/devportfolio/portfolio-backend/internal/projects/service"
	"github.com/devportfolio/portfolio-backend/internal/storage/postgres"
)

type RouterDeps struct {
	Config   *config.Config
	Log      *logrus.Logger
	Conn     *postgres.Connector
	Sessions session.Store
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(apimiddleware.RequestID(dep.Log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.Config.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-API-Key", "X-Request-Id"},
		AllowCredentials: true,
	}))

	healthHandler := httpapi.NewHealthHandler("portfolio-backend", dep.Config.App.Version, dep.Conn)
	healthHandler.RegisterRoutes(r)

	apiKeyGuard := authmw.APIKey(dep.Config.Auth.APIKey)
	sessionGuard := authmw.SessionRequired(dep.Sessions)
	loginLimiter := authmw.LoginRateLimit(dep.Config.Auth.LoginRateLimit, dep.Config.Auth.LoginRateBurst)

	api := r.Group("/api")

	authSvc := authservice.NewAuthService(dep.Config.Auth.AdminUsername, dep.Config.Auth.AdminPasswordHash)
	authHandler := authhttp.New(authSvc, dep.Sessions, dep.Log)
	authHandler.Register(api, apiKeyGuard, loginLimiter)

	repo := projectrepo.NewProjectRepository(dep.Conn)
	svc := projectservice.NewProjectService(repo, dep.Log)
	projectHandler := projecthttp.New(svc, dep.Log)
	projectHandler.Register(api.Group("/projects"), sessionGuard, apiKeyGuard)

	return r
}
