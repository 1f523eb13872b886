package main

import (
	"context"
	"log"
	"os"

	"MoveCleanWeb/config"
	"MoveCleanWeb/controllers"
	"MoveCleanWeb/i18n"
	"MoveCleanWeb/middlewares"
	"MoveCleanWeb/repositories/impl"
	"MoveCleanWeb/routes"
	"MoveCleanWeb/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	config.Init()
	config.InitFirebase()

	// Translation dictionaries are embedded and loaded once; they stay
	// immutable for the life of the process.
	bundle := i18n.NewBundle()
	if err := bundle.Load(); err != nil {
		log.Fatalf("error loading translations: %v", err)
	}

	identity, err := services.NewFirebaseIdentityClient(context.Background(), config.FirebaseAPIKey)
	if err != nil {
		log.Fatalf("error initializing identity client: %v", err)
	}

	// Initialize repositories
	reservationRepo := impl.NewReservationRepository(config.Firestore)

	// Initialize services
	authService := services.NewAuthService(identity)
	emailService := services.NewEmailService(config.SMTP, bundle)
	reservationService := services.NewReservationService(reservationRepo, emailService)
	translationService := services.NewTranslationService(bundle)

	// Set services in controllers
	controllers.SetAuthService(authService)
	controllers.SetReservationService(reservationService)
	controllers.SetTranslationService(translationService)

	// Initialize Gin router
	r := gin.Default()
	r.Use(middlewares.LocaleMiddleware(bundle))

	// Register routes
	routes.RegisterRoutes(r)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	r.Run(":" + port)
}
