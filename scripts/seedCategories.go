package main

import (
	"log"

	"lms/config"
	"lms/database"
	"lms/models"
)

// Seeds the default course categories. Safe to re-run; existing slugs are
// skipped.
func main() {
	cfg := config.LoadConfig()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	defaults := []struct {
		Name        string
		Description string
	}{
		{"Programming", "Software development and coding courses"},
		{"Design", "UI/UX, graphic and product design"},
		{"Business", "Management, marketing and entrepreneurship"},
		{"Data Science", "Analytics, machine learning and statistics"},
		{"Languages", "Foreign language learning"},
	}

	seeded := 0
	for _, d := range defaults {
		category, err := models.NewCategory(d.Name, d.Description)
		if err != nil {
			log.Printf("Skipping %q: %v", d.Name, err)
			continue
		}

		var existing models.Category
		if err := db.Where("slug = ?", category.Slug).First(&existing).Error; err == nil {
			log.Printf("Category %q already exists, skipping", d.Name)
			continue
		}

		if err := db.Create(category).Error; err != nil {
			log.Printf("Failed to seed %q: %v", d.Name, err)
			continue
		}
		seeded++
	}

	log.Printf("Seeding complete. %d categories created.", seeded)
}
