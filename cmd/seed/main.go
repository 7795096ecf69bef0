package main

import (
	"context"
	"log"
	"os"

	"beauty-advisor-be/internal/entity"
	"beauty-advisor-be/internal/repository/implementation"
	"beauty-advisor-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Seeds the product catalog from the JSON file into Postgres so the server
// can run with CATALOG_SOURCE=database.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	catalogPath := os.Getenv("CATALOG_FILE_PATH")
	if catalogPath == "" {
		catalogPath = "products.json"
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("🚀 Seeding Product Catalog from %s\n", catalogPath)

	if err := db.AutoMigrate(&entity.Product{}); err != nil {
		color.Red("Failed to migrate products table: %v", err)
		os.Exit(1)
	}

	repo := implementation.NewCatalogFileRepository(catalogPath)
	products, err := repo.LoadAll(context.Background())
	if err != nil {
		color.Red("Failed to read catalog file: %v", err)
		os.Exit(1)
	}

	created, skipped := 0, 0
	for _, p := range products {
		var existing entity.Product
		if err := db.Where("id = ?", p.Id).First(&existing).Error; err == nil {
			color.Yellow("Product '%s' already exists, skipping...", p.Id)
			skipped++
			continue
		}

		if err := db.Create(p).Error; err != nil {
			color.Red("Error creating product '%s': %v", p.Id, err)
			continue
		}
		created++
	}

	color.Green("Catalog seeding completed: %d created, %d skipped", created, skipped)
}
