package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	_ "dominant_assurance/docs" // swagger spec
	"dominant_assurance/internal/adapter/http/handlers"
	"dominant_assurance/internal/adapter/http/middleware"
	"dominant_assurance/internal/usecase"
	"dominant_assurance/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathLedgers  = "/ledgers/:projectId"
	PathProjects = "/projects/:projectId"
	PathAcls     = "/acls"

	shutdownTimeout = 10 * time.Second
)

// Dependencies are the use cases and auth settings the router is built from.
type Dependencies struct {
	Ledger   usecase.ILedgerUseCase
	Projects usecase.IProjectUseCase
	Contract usecase.IContractUseCase
	Sweep    usecase.ISweepUseCase
	Acl      usecase.IAclUseCase

	AdminPassword string
	FrontendURL   string
	Verifier      interfaces.IIdentityVerifier
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, deps.FrontendURL)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ledgerHandler := handlers.NewLedgerHandler(deps.Ledger, deps.Projects)
	projectHandler := handlers.NewProjectHandler(deps.Projects, deps.Contract, deps.Sweep, deps.Ledger)
	aclHandler := handlers.NewAclHandler(deps.Acl)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLedgerRoutes(v1, middleware.AdminAuth(deps.AdminPassword), ledgerHandler)

	// public routes; the principal is optional and checked per operation
	public := v1.Group("", middleware.ResolvePrincipal(deps.AdminPassword, deps.Verifier))
	addProjectRoutes(public, middleware.AdminAuth(deps.AdminPassword), projectHandler)
	addAclRoutes(public, aclHandler)

	return router
}

// Run will start the server and block until ctx is done or the listener fails.
func Run(ctx context.Context, router *gin.Engine, port string) error {
	srv := &http.Server{Addr: ":" + port, Handler: router, ReadHeaderTimeout: 10 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[http][server] listening port=%s", port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Printf("[http][server] shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func setMiddlewares(router *gin.Engine, frontendURL string) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	if frontendURL != "" {
		router.Use(middleware.CORS(frontendURL))
	}
}
