package main

import (
	"context"
	"net/http"
	"path/filepath"

	"billboard-locations/docs"
	"billboard-locations/internal/config"
	"billboard-locations/internal/handler"
	"billboard-locations/internal/jsexport"
	"billboard-locations/internal/logging"
	"billboard-locations/internal/repository"
	"billboard-locations/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title		Billboard Locations API
//	@version	1.0
//	@BasePath	/
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logging.Setup(config.LogLevel, config.LogPretty)

	if config.DBSource == "" {
		log.Fatal().Msg("DB_SOURCE is not set")
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("cannot prepare schema")
	}

	locationService := service.NewLocationService(repo, jsexport.Options{
		Variable: config.JSVariable,
		Source:   filepath.Base(config.InputFile),
	})
	locationHandler := handler.NewLocationHandler(locationService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/locations", locationHandler.List)
	r.GET("/locations/nearest", locationHandler.Nearest)
	r.GET("/locations-data.js", locationHandler.Script)

	docs.SwaggerInfo.BasePath = "/"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Info().Str("addr", config.ServerAddress).Msg("starting server")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
