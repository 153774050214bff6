package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/atelierlumen/studio-api/internal/blogservice"
	"github.com/atelierlumen/studio-api/internal/common"
	"github.com/atelierlumen/studio-api/internal/enquiryservice"
	"github.com/atelierlumen/studio-api/internal/mailservice"
)

type application struct {
	config         *Config
	logger         *slog.Logger
	blogService    *blogservice.BlogService
	enquiryService *enquiryservice.EnquiryService
	mailService    *mailservice.MailService
	broker         *common.MessageBroker
}

func main() {
	// Initialize the logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load the configuration
	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the database
	db, err := common.NewDB(common.DBConfig{
		Host:         cfg.DBHost,
		Port:         cfg.DBPort,
		User:         cfg.DBUser,
		Password:     cfg.DBPassword,
		Name:         cfg.DBName,
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		MaxIdleTime:  15 * time.Minute,
	})
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	// Initialize the message broker
	URI := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.MQUser, cfg.MQPassword, cfg.MQHost, cfg.MQPort)
	broker, err := common.NewMessageBroker(URI)
	if err != nil {
		logger.Error("failed to connect to the message broker", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer broker.Close()

	// Setup the exchange, queue, and binding key
	err = common.SetupEnquiryExchange(broker)
	if err != nil {
		logger.Error("failed to setup the enquiry exchange", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cache := common.NewCache(5*time.Minute, 10*time.Minute)

	// Initialize the services
	app := &application{
		config:         cfg,
		logger:         logger,
		blogService:    blogservice.NewBlogService(db, cache),
		enquiryService: enquiryservice.NewEnquiryService(broker),
		mailService:    mailservice.NewMailService(broker, cfg.MailHost, cfg.MailUser, cfg.MailPassword, cfg.MailSender, cfg.MailRecipient, cfg.MailPort, logger),
		broker:         broker,
	}

	// Initialize the consumer
	go app.mailService.SendEnquiryNotification()

	// Start the HTTP server
	err = app.serve()
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
