package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"travelmate/internal/auth"
	"travelmate/internal/database"
	"travelmate/internal/domain/service"
	"travelmate/internal/handler"
	"travelmate/internal/infrastructure/ai"
	pgdb "travelmate/internal/infrastructure/database"
	fsclient "travelmate/internal/infrastructure/firestore"
	"travelmate/internal/infrastructure/maps"
	"travelmate/internal/repository"
	"travelmate/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	required := []string{
		"MAPBOX_ACCESS_TOKEN",
		"GEMINI_API_KEY",
		"FIRESTORE_PROJECT_ID",
		"SUPABASE_URL",
		"SUPABASE_ANON_KEY",
		"DATABASE_URL",
	}
	var missing []string
	for _, name := range required {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v", missing)
	}

	ctx := context.Background()

	// External clients.
	firestoreClient, err := fsclient.NewClient(ctx, os.Getenv("FIRESTORE_PROJECT_ID"))
	if err != nil {
		log.Fatalf("failed to initialize Firestore: %v", err)
	}
	defer firestoreClient.Close()

	supabaseClient, err := database.NewSupabaseClient()
	if err != nil {
		log.Fatalf("failed to initialize Supabase: %v", err)
	}

	postgresClient, err := pgdb.NewPostgreSQLClient()
	if err != nil {
		log.Fatalf("failed to initialize PostgreSQL: %v", err)
	}
	defer postgresClient.Close()
	if err := postgresClient.HealthCheck(); err != nil {
		log.Fatalf("PostgreSQL health check failed: %v", err)
	}

	mapboxToken := os.Getenv("MAPBOX_ACCESS_TOKEN")
	geocoder := maps.NewMapboxGeocodingProvider(mapboxToken)
	directions := maps.NewMapboxDirectionsProvider(mapboxToken)
	gemini := ai.NewGeminiClient(os.Getenv("GEMINI_API_KEY"))

	// Repositories.
	fs := firestoreClient.GetClient()
	tripsRepo := repository.NewFirestoreTripsRepository(fs)
	routesRepo := repository.NewFirestoreSavedRoutesRepository(fs)
	translationsRepo := repository.NewFirestoreTranslationsRepository(fs)
	usersRepo := repository.NewFirestoreUsersRepository(fs)
	contentRepo := repository.NewPostgresContentRepository(postgresClient)

	// Services and use cases.
	planner := service.NewRoutePlanner(geocoder, directions, routesRepo)
	assistant := ai.NewTravelAssistant(gemini)

	planningUseCase := usecase.NewRoutePlanningUseCase(planner, routesRepo)
	assistantUseCase := usecase.NewAssistantUseCase(assistant, translationsRepo)
	tripsUseCase := usecase.NewTripsUseCase(tripsRepo)
	contentUseCase := usecase.NewContentUseCase(contentRepo)
	profileUseCase := usecase.NewProfileUseCase(usersRepo)

	// Handlers.
	routeHandler := handler.NewRouteHandler(planningUseCase)
	assistantHandler := handler.NewAssistantHandler(assistantUseCase)
	tripHandler := handler.NewTripHandler(tripsUseCase)
	contentHandler := handler.NewContentHandler(contentUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)

	authProvider := auth.NewSupabaseAuthProvider(supabaseClient)

	r := gin.Default()
	r.Use(handler.AuthMiddleware(authProvider))

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "travelmate"})
		})

		api.POST("/routes/plan", routeHandler.PostPlanRoute)
		api.GET("/routes", handler.RequireAuth(), routeHandler.GetSavedRoutes)

		api.POST("/chat", assistantHandler.PostChat)
		api.POST("/advice", assistantHandler.PostAdvice)
		api.GET("/places/:name/description", assistantHandler.GetPlaceDescription)
		api.GET("/translations", handler.RequireAuth(), assistantHandler.GetTranslations)

		api.GET("/destinations", contentHandler.GetDestinations)
		api.GET("/cultural-spots", contentHandler.GetCulturalSpots)
		api.GET("/events", contentHandler.GetEvents)
		api.GET("/travel-tips/random", contentHandler.GetTravelTip)

		trips := api.Group("/trips", handler.RequireAuth())
		{
			trips.POST("", tripHandler.PostTrip)
			trips.GET("", tripHandler.GetTrips)
			trips.GET("/:id", tripHandler.GetTrip)
			trips.PUT("/:id", tripHandler.PutTrip)
			trips.DELETE("/:id", tripHandler.DeleteTrip)
		}

		profile := api.Group("/profile", handler.RequireAuth())
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PUT("", profileHandler.PutProfile)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("travelmate server starting on :%s...\n", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
