// main.go - Entry point for the pay-raise backend server

package main // Declares the package name

import ( // Import required packages
	"log" // Logging

	"go-payraise-backend/config"     // Project config management
	"go-payraise-backend/crypto"     // Key manager and field cipher
	"go-payraise-backend/database"   // Database connection and setup
	"go-payraise-backend/handlers"   // HTTP handlers for API endpoints
	"go-payraise-backend/middleware" // Middleware (authentication, access policy)
	"go-payraise-backend/policy"     // Access requirements
	"go-payraise-backend/validation" // Custom binding validators

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/joho/godotenv" // .env loading

	payraisestore "go-payraise-backend/store" // Record store
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and establish connections
	_ = godotenv.Load() // Load .env if present; real env vars win
	cfg := config.Load()

	db, err := database.Connect(cfg.DBPath) // Connect to the database
	if err != nil {
		log.Fatal("DB connection error: ", err)
	}

	// The field-encryption key is resolved once and cached; the cipher
	// and store are built around it and shared by reference.
	keys := crypto.NewKeyManager(cfg.EncryptionKey, cfg.KeyPath)
	if _, err := keys.Resolve(); err != nil {
		log.Fatal("encryption key error: ", err)
	}
	cipher := crypto.NewFieldCipher(keys)
	st := payraisestore.New(db, cipher)

	if cfg.SeedPath != "" { // Seed accounts and demo data when configured
		if err := database.Seed(db, st, cfg.SeedPath); err != nil {
			log.Fatal("seed error: ", err)
		}
	}

	validation.Register() // Install payraisedate/positiveamount validators

	// STEP 2: Create Gin router and configure routes
	r := gin.Default() // Create a new Gin router (web server)
	h := handlers.New(st, cfg)

	// Public routes (no authentication required)
	r.POST("/login", h.Login) // Public route: user login

	// Protected routes (require JWT authentication). View-level access
	// is layered on with RequireLevel; denials render as 404 so
	// privileged routes are indistinguishable from missing ones.
	api := r.Group("/api")               // Create a route group for protected endpoints
	api.Use(middleware.AuthMiddleware()) // Apply JWT authentication middleware
	{
		api.POST("/logout", h.Logout)                                                              // Protected: logout acknowledgment
		api.GET("/payraises", h.ShowPayRaises)                                                     // Protected: own pay raises
		api.POST("/payraises", middleware.RequireLevel(policy.AddOwnPayRaise), h.AddPayRaise)      // Protected: submit own pay raise
		api.GET("/payraises/all", middleware.RequireLevel(policy.ListAllPayRaises), h.ListAllPayRaises) // Managers only
		api.GET("/employees", middleware.RequireLevel(policy.ListEmployees), h.ListEmployees)      // Admins and managers
		api.POST("/employees", middleware.RequireLevel(policy.AddEmployee), h.AddEmployee)         // Admins and managers
	}

	// Unknown routes answer with the same body as policy denials.
	r.NoRoute(middleware.NotFound)

	// STEP 3: Start the web server
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal("server error: ", err)
	}
}
