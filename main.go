package main

import (
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/chandran2006/saveup-backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load the .env file if it exists. Variables that are already set
	// take precedence over the file.
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create data directory
	dataDir := filepath.Join(".", "data")
	err := os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	dsn, ok := os.LookupEnv("DB_DSN")
	if !ok {
		dsn = "data/gorm.db?_pragma=foreign_keys(1)"
	}

	err = models.Connect(dsn)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		log.Fatal().Msg("environment variable API_URL must be set")
	}

	baseURL, err := url.Parse(apiURL)
	if err != nil {
		log.Fatal().Msg("environment variable API_URL must be a valid URL")
	}

	r, err := router.Config(baseURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	err = router.AttachRoutes(r.Group(baseURL.Path))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// The port can be configured with the PORT environment variable,
	// gin defaults to 8080 when it is unset.
	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
