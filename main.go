package main

import (
	"context"
	"io"
	"net/url"
	"os"
	"path/filepath"

	v1 "github.com/CarlosRW/Fince-AI-Budget/internal/controllers/v1"
	"github.com/CarlosRW/Fince-AI-Budget/internal/gateway"
	"github.com/CarlosRW/Fince-AI-Budget/internal/models"
	"github.com/CarlosRW/Fince-AI-Budget/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// A .env file is optional, it is only used for local development
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

	// The base URL of the API, used to build links in responses
	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		apiURL = "http://localhost:8080"
	}

	baseURL, err := url.Parse(apiURL)
	if err != nil {
		log.Fatal().Str("API_URL", apiURL).Msg("environment variable API_URL must be a valid URL")
	}

	dbPath, ok := os.LookupEnv("DB_PATH")
	if !ok {
		// Create the data directory for the default location
		err := os.MkdirAll(filepath.Join(".", "data"), os.ModePerm)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		dbPath = "data/gorm.db"
	}

	// Connect to the database. This also migrates all models
	// and creates the settings singleton
	err = models.Connect(dbPath)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// The assistant is optional. Without an API key, extraction and advice
	// degrade gracefully instead of failing
	if apiKey, ok := os.LookupEnv("GEMINI_API_KEY"); ok {
		modelName, ok := os.LookupEnv("GEMINI_MODEL")
		if !ok {
			modelName = "gemini-1.5-flash"
		}

		client, err := gateway.NewGemini(context.Background(), apiKey, modelName)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
		defer client.Close()

		v1.Assistant = client
		log.Info().Str("model", modelName).Msg("assistant enabled")
	} else {
		log.Info().Msg("GEMINI_API_KEY is not set, assistant is disabled")
	}

	r, teardown, err := router.Config(baseURL)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
