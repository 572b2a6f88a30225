// main.go
package main

import (
	"log"
	"time"

	"github.com/ritesh23s/task-manager/cmd"
	"github.com/ritesh23s/task-manager/internal/data/repository"
	"github.com/ritesh23s/task-manager/internal/wire"
	"github.com/ritesh23s/task-manager/pkg/database"
	"github.com/ritesh23s/task-manager/pkg/mailer"
	"github.com/ritesh23s/task-manager/pkg/otp"
	"github.com/ritesh23s/task-manager/pkg/token"
	"github.com/ritesh23s/task-manager/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database and apply migrations
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize repositories
	repos := repository.NewRepository(db, logger)

	// Ephemeral registration OTP store; in-flight registrations are
	// lost on restart
	otps := otp.NewStore(time.Duration(config.OTP.ExpiryMinutes) * time.Minute)
	defer otps.Close()

	// Token issuer/verifier
	tokens := token.NewManager(config.JWT.Secret, config.JWT.ExpiryHours)

	// Outbound mail; log-only when no SMTP relay is configured
	var mail mailer.Mailer
	if config.Email.Host != "" {
		mail = mailer.NewSMTPMailer(config.Email, logger)
	} else {
		mail = mailer.NewLogMailer(logger)
	}

	// Wire all dependencies
	app := wire.Wiring(repos, otps, tokens, mail, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
