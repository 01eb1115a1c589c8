package main

import (
	"crev/config"
	"crev/database"
	"crev/models"
	"encoding/csv"
	"log"
	"os"
	"strings"
)

// Imports the course catalog from courses.csv (course_code,course_name).
// Courses are reference data; the API never creates them.
func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	file, err := os.Open("courses.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	// Map header indices
	header := records[0]
	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	codeIdx, ok := headerIndex["course_code"]
	if !ok {
		log.Fatal("CSV is missing the course_code column")
	}
	nameIdx, ok := headerIndex["course_name"]
	if !ok {
		log.Fatal("CSV is missing the course_name column")
	}

	db := database.Database.Db

	inserted := 0
	updated := 0
	skipped := 0

	for _, row := range records[1:] {
		code := strings.TrimSpace(row[codeIdx])
		name := strings.TrimSpace(row[nameIdx])
		if code == "" || name == "" {
			skipped++
			continue
		}

		var existing models.Course
		if err := db.Where("course_code = ?", code).First(&existing).Error; err != nil {
			course := models.Course{CourseCode: code, CourseName: name}
			if err := db.Create(&course).Error; err != nil {
				log.Printf("Failed to insert %s: %v", code, err)
				skipped++
				continue
			}
			inserted++
			continue
		}

		if existing.CourseName != name || existing.IsDeleted {
			existing.CourseName = name
			existing.IsDeleted = false
			if err := db.Save(&existing).Error; err != nil {
				log.Printf("Failed to update %s: %v", code, err)
				skipped++
				continue
			}
			updated++
		}
	}

	log.Printf("Import complete: %d inserted, %d updated, %d skipped", inserted, updated, skipped)
}
