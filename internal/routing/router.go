package routing

import (
	"net/http"
	"os"
	"time"

	"acronym-finder/internal/managers"
	"acronym-finder/internal/middleware"
	"acronym-finder/internal/routing/handlers"
	"acronym-finder/internal/schemas"
	"acronym-finder/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	apiName           = "Acronym Finder"
	defaultApiVersion = "main:latest"
)

func InitRouter(databaseMgr managers.DatabaseMgr, jwtMgr managers.JWTMgr, passwordMgr managers.PasswordMgr, corsOrigins []string) *gin.Engine {
	// Initialize router with logging and recovery middleware
	router := gin.New()
	// Initialize middleware
	setupCommonMiddleware(router, corsOrigins)
	// Setup routes
	setupRoutes(router, databaseMgr, jwtMgr, passwordMgr)

	return router
}

func setupCommonMiddleware(router *gin.Engine, corsOrigins []string) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.InjectTrace())
	router.Use(cors.New(corsConfig(corsOrigins)))
	router.Use(middleware.SanitizePath())
	router.Use(middleware.LogRequest())
}

func corsConfig(origins []string) cors.Config {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Accept", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "X-Trace-Id"},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}

	return config
}

func setupRoutes(router *gin.Engine, databaseMgr managers.DatabaseMgr, jwtMgr managers.JWTMgr, passwordMgr managers.PasswordMgr) {
	// Set up version route
	router.GET("/", func(c *gin.Context) {
		apiVersion := os.Getenv("API_VERSION")
		if apiVersion == "" {
			apiVersion = defaultApiVersion
		}
		metadata := &schemas.MetadataDTO{
			ApiName:    apiName,
			ApiVersion: apiVersion,
		}
		utils.WriteAndLogResponse(c, metadata, http.StatusOK)
	})

	// Set up health route
	router.GET("/health", func(c *gin.Context) {
		if err := databaseMgr.Ping(c.Request.Context()); err != nil {
			utils.WriteAndLogError(c, schemas.ServiceUnavailable, http.StatusServiceUnavailable, err)
			return
		}
		c.Status(http.StatusOK)
	})

	// Set up API routes
	apiRouter := router.Group("/api")
	{
		userHdl := handlers.NewUserHandler(databaseMgr, jwtMgr, passwordMgr)

		// Set up user routes
		userRouter := apiRouter.Group("/users")
		userRoutes(userRouter, userHdl)

		// Set up auth routes
		authRouter := apiRouter.Group("/auth")
		authRoutes(authRouter, userHdl, databaseMgr, jwtMgr, passwordMgr)

		apiRouter.GET("/protected", jwtMgr.JWTMiddleware(), userHdl.Protected)

		// Set up acronym routes
		acronymRouter := apiRouter.Group("/acronyms")
		acronymHdl := handlers.NewAcronymHandler(databaseMgr)
		acronymRoutes(acronymRouter, acronymHdl, jwtMgr)
	}

	router.NoRoute(func(c *gin.Context) {
		utils.WriteAndLogResponse(c, schemas.NotFound, http.StatusNotFound)
	})
}

func userRoutes(userRouter *gin.RouterGroup, userHdl handlers.UserHdl) {
	userRouter.POST("", middleware.ValidateAndSanitizeStruct[schemas.RegistrationRequest](), userHdl.RegisterUser)
}

func authRoutes(authRouter *gin.RouterGroup, userHdl handlers.UserHdl, databaseMgr managers.DatabaseMgr,
	jwtMgr managers.JWTMgr, passwordMgr managers.PasswordMgr) {
	authRouter.POST("/login", middleware.BasicAuth(databaseMgr, passwordMgr), userHdl.LoginUser)
	authRouter.POST("/refresh", jwtMgr.JWTMiddleware(), userHdl.RefreshToken)
}

func acronymRoutes(acronymRouter *gin.RouterGroup, acronymHdl handlers.AcronymHdl, jwtMgr managers.JWTMgr) {
	// Every acronym route requires a valid bearer token
	acronymRouter.Use(jwtMgr.JWTMiddleware())
	acronymRouter.GET("", acronymHdl.ListAcronyms)
	acronymRouter.GET("/:"+utils.AcronymIdKey, acronymHdl.GetAcronym)
	acronymRouter.POST("", middleware.ValidateAndSanitizeStruct[schemas.CreateAcronymRequest](), acronymHdl.CreateAcronym)
	acronymRouter.PUT("/:"+utils.AcronymIdKey, middleware.ValidateAndSanitizeStruct[schemas.UpdateAcronymRequest](), acronymHdl.UpdateAcronym)
	acronymRouter.DELETE("/:"+utils.AcronymIdKey, acronymHdl.DeleteAcronym)
}
