package main

import (
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"rentora/internal/caching"
	"rentora/internal/config"
	"rentora/internal/dashboard"
	"rentora/internal/handlers"
	"rentora/internal/jobs"
	"rentora/internal/jobs/background"
	"rentora/internal/middleware"
	"rentora/internal/models"
	"rentora/internal/repositories"
	"rentora/internal/services"
	"rentora/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pool, err := database.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	tokenRepo := repositories.NewTokenRepository(pool)
	propertyRepo := repositories.NewPropertyRepository(pool)
	leaseRepo := repositories.NewLeaseRepository(pool)
	invitationRepo := repositories.NewInvitationRepository(pool)
	paymentRepo := repositories.NewPaymentRepository(pool)
	requestRepo := repositories.NewRequestRepository(pool)
	maintenanceRepo := repositories.NewMaintenanceRepository(pool)

	// External collaborators
	cacheSvc := caching.NewRedisCacheService(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	notifier := services.NewNotificationService(cfg.Email.APIURL, cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.SMSAPIURL)
	gateway := services.NewPaystackService(cfg.Paystack.SecretKey, cfg.Paystack.BaseURL)
	storageSvc, err := services.NewStorageService(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.UseSSL)
	if err != nil {
		log.Fatalf("Failed to initialize storage service: %v", err)
	}

	// Services
	authSvc := services.NewAuthService(userRepo, tokenRepo, notifier, cacheSvc, cfg.JWTSecret, cfg.GoogleJWKSURL)
	propertySvc := services.NewPropertyService(propertyRepo)
	leaseSvc := services.NewLeaseService(leaseRepo, propertyRepo, userRepo)
	invitationSvc := services.NewInvitationService(invitationRepo, propertyRepo, leaseRepo, notifier, pool)
	paymentSvc := services.NewPaymentService(paymentRepo, leaseRepo, userRepo, propertyRepo, gateway)
	requestSvc := services.NewRequestService(requestRepo, propertyRepo)
	maintenanceSvc := services.NewMaintenanceService(maintenanceRepo, propertyRepo)
	dashboardSvc := dashboard.NewService(propertyRepo, leaseRepo, invitationRepo, paymentRepo, maintenanceRepo, cacheSvc)

	// Handlers
	authHandlers := handlers.NewAuthHandlers(authSvc, userRepo)
	propertyHandlers := handlers.NewPropertyHandlers(propertySvc)
	leaseHandlers := handlers.NewLeaseHandlers(leaseSvc)
	invitationHandlers := handlers.NewInvitationHandlers(invitationSvc)
	paymentHandlers := handlers.NewPaymentHandlers(paymentSvc)
	requestHandlers := handlers.NewRequestHandlers(requestSvc)
	maintenanceHandlers := handlers.NewMaintenanceHandlers(maintenanceSvc)
	dashboardHandlers := handlers.NewDashboardHandlers(dashboardSvc)
	documentHandlers := handlers.NewDocumentHandlers(storageSvc, cfg.Minio.Bucket)
	healthHandlers := handlers.NewHealthHandlers(pool)

	// Background jobs
	reminderSvc := jobs.NewLeaseReminderService(leaseRepo, notifier)
	scheduler := background.NewJobScheduler(reminderSvc)
	if err := scheduler.Start(); err != nil {
		log.Printf("Failed to start background scheduler: %v", err)
	}
	defer scheduler.Stop()

	e := echo.New()
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Pre(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints stay outside the versioned API
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)
	e.GET("/health/live", healthHandlers.LivenessCheck)

	v1 := e.Group("/v1")

	// Public auth routes
	v1.POST("/auth/signup", authHandlers.Signup)
	v1.POST("/auth/login", authHandlers.Login)
	v1.POST("/auth/google", authHandlers.GoogleSignIn)

	// Everything else requires a bearer token
	protected := v1.Group("", middleware.JWTMiddleware(userRepo, cfg.JWTSecret))

	landlordOnly := middleware.RequireRole(models.RoleLandlord)
	tenantOnly := middleware.RequireRole(models.RoleTenant)

	protected.POST("/auth/verify-email", authHandlers.VerifyEmail)
	protected.POST("/auth/resend-otp", authHandlers.ResendOTP)
	protected.GET("/me", authHandlers.Me)
	protected.PUT("/me", authHandlers.UpdateMe)

	createPropertyLimit := middleware.RateLimit(cacheSvc, "create-property", 20, time.Hour)

	protected.POST("/properties", propertyHandlers.CreateProperty, landlordOnly, createPropertyLimit)
	protected.GET("/properties", propertyHandlers.ListProperties)
	protected.GET("/properties/:id", propertyHandlers.GetProperty)
	protected.PUT("/properties/:id", propertyHandlers.UpdateProperty, landlordOnly)
	protected.PATCH("/properties/:id", propertyHandlers.UpdateProperty, landlordOnly)
	protected.DELETE("/properties/:id", propertyHandlers.DeleteProperty, landlordOnly)

	protected.POST("/leases", leaseHandlers.CreateLease, landlordOnly)
	protected.GET("/leases", leaseHandlers.ListLeases)
	protected.GET("/leases/:id", leaseHandlers.GetLease)
	protected.PUT("/leases/:id", leaseHandlers.UpdateLease, landlordOnly)
	protected.PATCH("/leases/:id", leaseHandlers.UpdateLease, landlordOnly)
	protected.DELETE("/leases/:id", leaseHandlers.DeleteLease, landlordOnly)

	protected.POST("/invitations", invitationHandlers.CreateInvitation, landlordOnly)
	protected.GET("/invitations", invitationHandlers.ListInvitations)
	protected.POST("/invitations/:id/accept", invitationHandlers.AcceptInvitation, tenantOnly)
	protected.POST("/invitations/:id/decline", invitationHandlers.DeclineInvitation, tenantOnly)

	protected.POST("/payments", paymentHandlers.RecordPayment, tenantOnly)
	protected.GET("/payments", paymentHandlers.ListPayments)
	protected.POST("/payments/subaccount", paymentHandlers.CreateSubaccount, landlordOnly)
	protected.POST("/payments/initialize", paymentHandlers.InitializePayment, tenantOnly)
	protected.GET("/payments/verify/:reference", paymentHandlers.VerifyPayment, tenantOnly)

	protected.POST("/requests", requestHandlers.CreateRequest, tenantOnly)
	protected.GET("/requests", requestHandlers.ListRequests)

	protected.POST("/maintenance", maintenanceHandlers.CreateRequest, tenantOnly)
	protected.GET("/maintenance", maintenanceHandlers.ListRequests)

	protected.GET("/dashboard/landlord", dashboardHandlers.GetLandlordDashboard, landlordOnly)
	protected.GET("/dashboard/tenant", dashboardHandlers.GetTenantDashboard, tenantOnly)

	protected.POST("/documents", documentHandlers.UploadDocument)
	protected.GET("/documents/url", documentHandlers.GetDocumentURL)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Port)))
}
