package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quickmart/loyalty-backend/api/routes"
	"github.com/quickmart/loyalty-backend/internal/config"
	"github.com/quickmart/loyalty-backend/internal/handlers"
	"github.com/quickmart/loyalty-backend/internal/repositories"
	mongorepo "github.com/quickmart/loyalty-backend/internal/repositories/mongodb"
	"github.com/quickmart/loyalty-backend/internal/services"
	"github.com/quickmart/loyalty-backend/pkg/mongodb"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to MongoDB
	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Initialize repositories
	var customerRepo repositories.CustomerRepository = mongorepo.NewCustomerRepository(db)
	var accountRepo repositories.LoyaltyAccountRepository = mongorepo.NewLoyaltyAccountRepository(db)
	var productRepo repositories.ProductRepository = mongorepo.NewProductRepository(db)
	var categoryRepo repositories.CategoryRepository = mongorepo.NewCategoryRepository(db)
	var transactionRepo repositories.PointTransactionRepository = mongorepo.NewPointTransactionRepository(db)
	var adminUserRepo repositories.AdminUserRepository = mongorepo.NewAdminUserRepository(db)

	// Initialize services
	loyaltyService := services.NewLoyaltyService(customerRepo, accountRepo, productRepo, categoryRepo, transactionRepo)
	authService := services.NewAuthService(customerRepo, adminUserRepo, cfg)
	customerService := services.NewCustomerService(customerRepo, accountRepo, transactionRepo)
	catalogService := services.NewCatalogService(productRepo, categoryRepo)

	// Initialize handlers
	handlerDeps := routes.HandlerDependencies{
		AuthHandler:     handlers.NewAuthHandler(authService),
		CheckoutHandler: handlers.NewCheckoutHandler(loyaltyService),
		CustomerHandler: handlers.NewCustomerHandler(customerService),
		CatalogHandler:  handlers.NewCatalogHandler(catalogService),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	// Run server in a goroutine so that it doesn't block
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
