package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/quickmart/loyalty-backend/internal/environment"
	"github.com/quickmart/loyalty-backend/internal/models"
	mongorepo "github.com/quickmart/loyalty-backend/internal/repositories/mongodb"
	"github.com/quickmart/loyalty-backend/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Seeds the database with sample customers, categories, products and
// earning rules. Safe to run repeatedly: seeding is skipped when
// customers already exist, unless SEED_RESET=true drops the seeded
// collections first.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	mongoURI := environment.GetEnv("MONGODB_URI", "mongodb://localhost:27017")
	dbName := environment.GetEnv("MONGODB_DATABASE", "loyalty_program")
	timeout := time.Duration(environment.GetEnvAsInt("SEED_TIMEOUT_SECONDS", 30)) * time.Second

	client, err := mongodb.NewClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	db := client.Database(dbName)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	if environment.GetEnvAsBool("SEED_RESET", false) {
		for _, name := range []string{"customers", "loyalty_accounts", "categories", "products", "point_transactions"} {
			if err := db.Collection(name).Drop(ctx); err != nil {
				log.Fatalf("Failed to drop collection %q: %v", name, err)
			}
		}
		log.Println("SEED_RESET set, dropped existing collections")
	}

	count, err := db.Collection("customers").CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to count customers: %v", err)
	}
	if count > 0 {
		log.Println("Database already seeded, nothing to do")
		return
	}

	customerRepo := mongorepo.NewCustomerRepository(db)
	accountRepo := mongorepo.NewLoyaltyAccountRepository(db)
	productRepo := mongorepo.NewProductRepository(db)
	categoryRepo := mongorepo.NewCategoryRepository(db)

	date := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}
	ppd := func(v int) *int { return &v }

	// Categories with their earning rules. The default category covers
	// products explicitly assigned to it with a catch-all rule.
	electronics := &models.Category{
		Name: "Electronics",
		Rules: []models.PointEarningRule{{
			ID:              primitive.NewObjectID(),
			PointsPerDollar: ppd(2),
			StartDate:       date(2024, time.January, 1),
			EndDate:         date(2024, time.December, 31),
		}},
	}
	books := &models.Category{
		Name: "Books",
		Rules: []models.PointEarningRule{{
			ID:              primitive.NewObjectID(),
			PointsPerDollar: ppd(1),
			StartDate:       date(2024, time.January, 1),
			EndDate:         date(2024, time.December, 31),
		}},
	}
	defaultCategory := &models.Category{
		Name: "Default",
		Rules: []models.PointEarningRule{{
			ID:              primitive.NewObjectID(),
			PointsPerDollar: ppd(1),
			StartDate:       date(1900, time.January, 1),
			EndDate:         date(2099, time.December, 31),
		}},
	}
	for _, category := range []*models.Category{defaultCategory, electronics, books} {
		if err := categoryRepo.Create(ctx, category); err != nil {
			log.Fatalf("Failed to seed category %q: %v", category.Name, err)
		}
	}

	mustDecimal := func(s string) *primitive.Decimal128 {
		d, err := primitive.ParseDecimal128(s)
		if err != nil {
			log.Fatalf("Invalid price %q: %v", s, err)
		}
		return &d
	}

	products := []*models.Product{
		{
			Name:       "Laptop",
			Price:      mustDecimal("1200.00"),
			CategoryID: electronics.ID,
			ImageURL:   "https://upload.wikimedia.org/wikipedia/commons/e/e9/Apple-desk-laptop-macbook-pro_%2823699397893%29.jpg",
		},
		{
			Name:       "Science Fiction Book",
			Price:      mustDecimal("15.99"),
			CategoryID: books.ID,
			ImageURL:   "https://upload.wikimedia.org/wikipedia/commons/thumb/e/eb/Eric_Frank_Russell_-_Die_Gro%C3%9Fe_Explosion_-_Cover.jpg/770px-Eric_Frank_Russell_-_Die_Gro%C3%9Fe_Explosion_-_Cover.jpg",
		},
	}
	for _, product := range products {
		if err := productRepo.Create(ctx, product); err != nil {
			log.Fatalf("Failed to seed product %q: %v", product.Name, err)
		}
	}

	customers := []struct {
		name   string
		email  string
		points int
	}{
		{"John Doe", "john.doe@example.com", 100},
		{"Jane Smith", "jane.smith@example.com", 200},
	}
	for _, c := range customers {
		customer := &models.Customer{Name: c.name, Email: c.email}
		if err := customerRepo.Create(ctx, customer); err != nil {
			log.Fatalf("Failed to seed customer %q: %v", c.name, err)
		}
		account := &models.LoyaltyAccount{CustomerID: customer.ID, Points: c.points}
		if err := accountRepo.Create(ctx, account); err != nil {
			log.Fatalf("Failed to seed loyalty account for %q: %v", c.name, err)
		}
		log.Printf("Seeded customer %s (id %s)", c.name, customer.ID.Hex())
	}

	log.Println("Database seeded successfully")
}
