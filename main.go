package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salonflow/config"
	"salonflow/cron"
	"salonflow/database"
	bookingRepoPkg "salonflow/database/repository/bookingrequest"
	providerRepoPkg "salonflow/database/repository/provider"
	salonRepoPkg "salonflow/database/repository/salon"
	serviceRepoPkg "salonflow/database/repository/service"
	teamRepoPkg "salonflow/database/repository/team"
	usageRepoPkg "salonflow/database/repository/usage"
	"salonflow/handlers"
	"salonflow/routes"
	"salonflow/services/booking"
	"salonflow/services/mail"
	"salonflow/services/notification"
	salonSvc "salonflow/services/salon"
	"salonflow/services/sms"
	"salonflow/services/storage"
	"salonflow/services/tasks"
	"salonflow/services/usage"
	"salonflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	zap.ReplaceGlobals(logger)

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)
	stripe.Key = config.AppConfig.StripeKey

	// Outbound gateway clients.
	smsSender, err := sms.NewTwilioSender(
		config.AppConfig.TwilioAccountSID,
		config.AppConfig.TwilioAuthToken,
		config.AppConfig.TwilioFromNumber,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize SMS sender: %v", err)
	}
	mailer, err := mail.NewSendGridMailer(
		config.AppConfig.SendGridAPIKey,
		config.AppConfig.EmailFrom,
		config.AppConfig.EmailFromName,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize mailer: %v", err)
	}
	mediaService, err := storage.NewCloudinaryMediaService(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize media storage: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// Repositories.
	salonRepo := salonRepoPkg.NewMongoSalonRepo()
	providerRepo := providerRepoPkg.NewMongoProviderRepo()
	teamRepo := teamRepoPkg.NewMongoTeamRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	usageRepo := usageRepoPkg.NewMongoUsageRepo()

	// Services.
	directory := &salonSvc.CachedDirectory{
		Repo:   salonRepo,
		Cache:  utils.GetCacheClient(),
		TTL:    5 * time.Minute,
		Logger: logger,
	}

	usageTracker := &usage.DefaultTracker{
		Repo:   usageRepo,
		Salons: salonRepo,
		Logger: logger,
	}

	dispatcher := &notification.DefaultDispatcher{
		Providers:        providerRepo,
		Team:             teamRepo,
		SMS:              smsSender,
		Mailer:           mailer,
		DashboardBaseURL: config.AppConfig.DashboardBaseURL,
		Logger:           logger,
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()
	waitlistScheduler := &tasks.AsynqScheduler{Client: asynqClient}

	intakeService := &booking.DefaultIntakeService{
		Directory:  directory,
		Requests:   bookingRepo,
		Usage:      usageTracker,
		Dispatcher: dispatcher,
		Waitlist:   waitlistScheduler,
		Logger:     logger,
	}

	// Background worker for waitlist follow-ups.
	cron.InitWaitlistWorker(bookingRepo, mailer)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking:  handlers.NewBookingHandler(intakeService, logger),
		Salon:    handlers.NewSalonHandler(salonRepo, directory),
		Provider: handlers.NewProviderHandler(providerRepo),
		Team:     handlers.NewTeamHandler(teamRepo),
		Service:  handlers.NewServiceHandler(serviceRepo),
		Requests: handlers.NewRequestsHandler(bookingRepo, usageRepo),
		Media:    handlers.NewMediaHandler(mediaService, salonRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
