package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/dkwon/shoplab-backend/config"
	"github.com/dkwon/shoplab-backend/internal/db"
	"github.com/dkwon/shoplab-backend/internal/seed"
	"github.com/dkwon/shoplab-backend/pkg/logger"
)

func main() {
	customerCount := flag.Int("customers", 0, "number of customers to generate (defaults to SEED_CUSTOMER_COUNT)")
	productScale := flag.Int("scale", 0, "products per category (defaults to SEED_PRODUCT_SCALE)")
	yes := flag.Bool("yes", false, "skip the confirmation prompt")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.Initialize(logger.Config{
		Level:       "info",
		Format:      cfg.Log.Format,
		EnableColor: true,
	})

	if *customerCount <= 0 {
		*customerCount = cfg.Seed.CustomerCount
	}
	if *productScale <= 0 {
		*productScale = cfg.Seed.ProductScale
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	fmt.Printf("Seeding %d customers at product scale %d (batch size %d)\n",
		*customerCount, *productScale, cfg.Seed.BatchSize)

	if !*yes {
		fmt.Print("Do you want to proceed? (yes/no): ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "yes" && confirm != "y" {
			fmt.Println("Seed cancelled.")
			return
		}
	}

	randomSeed := cfg.Seed.RandomSeed
	if randomSeed == 0 {
		randomSeed = time.Now().UnixNano()
	}

	seeder := seed.NewSeeder(
		seed.NewRepositories(db.GetDB()),
		seed.Options{
			BatchSize:  cfg.Seed.BatchSize,
			CachePools: cfg.Seed.CachePools,
		},
		rand.New(rand.NewSource(randomSeed)),
	)

	start := time.Now()
	summary, err := seeder.Run(*customerCount, *productScale)
	if err != nil {
		log.Fatal("Seed run failed:", err)
	}

	if summary.Skipped {
		fmt.Printf("Data already present (%d customers), nothing to do.\n", summary.ExistingCustomers)
		return
	}

	fmt.Println("Seed completed successfully!")
	fmt.Printf("  Categories:  %d\n", summary.Categories)
	fmt.Printf("  Products:    %d\n", summary.Products)
	fmt.Printf("  Customers:   %d\n", summary.Customers)
	fmt.Printf("  Addresses:   %d\n", summary.Addresses)
	fmt.Printf("  Orders:      %d\n", summary.Orders)
	fmt.Printf("  Order items: %d\n", summary.OrderItems)
	fmt.Printf("  Reviews:     %d\n", summary.Reviews)
	fmt.Printf("  Elapsed:     %s\n", time.Since(start).Round(time.Millisecond))
}
