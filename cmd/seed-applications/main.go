package main

import (
	"context"
	"fmt"
	"time"

	"github.com/vidyasetu/scholartrack-backend/internal/config"
	"github.com/vidyasetu/scholartrack-backend/internal/database"
	"github.com/vidyasetu/scholartrack-backend/internal/logger"
)

// seedRow is one sample application for local development.
type seedRow struct {
	name             string
	courseName       string
	yearOfStudy      int
	studentSalaried  int16
	fatherAlive      int16
	fatherWorking    int16
	fatherOccupation *string
	motherAlive      int16
	motherWorking    int16
	motherOccupation *string
	marksheetUpload  *string
	aadharNo         string
	capID            string
}

func str(s string) *string { return &s }

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rows := []seedRow{
		{"Aarav Sharma", "B.Tech Computer Science", 2, 0, 1, 1, str("Farmer"), 1, 0, nil, str("uploads/marksheet_1.pdf"), "482913776521", "CAP2024-0101"},
		{"Priya Patil", "B.Sc Physics", 1, 0, 1, 0, nil, 1, 1, str("Tailor"), nil, "903114568842", "CAP2024-0102"},
		{"Rohan Deshmukh", "Diploma Mechanical", 3, 1, 0, 0, nil, 1, 0, nil, str("uploads/marksheet_3.pdf"), "221874901136", "CAP2024-0103"},
		{"Sneha Kulkarni", "B.Com", 2, 0, 1, 1, str("Shopkeeper"), 0, 0, nil, nil, "664201875493", "CAP2024-0104"},
		{"Imran Shaikh", "B.A Economics", 1, 0, 1, 1, str("Driver"), 1, 1, str("Domestic worker"), str("uploads/marksheet_5.pdf"), "118820034756", "CAP2024-0105"},
	}

	fmt.Printf("=== Seeding %d Applications ===\n", len(rows))

	for _, r := range rows {
		var id int
		err := pool.QueryRow(ctx,
			`INSERT INTO applications
			   (name, course_name, year_of_study, student_salaried,
			    father_alive, father_working, father_occupation,
			    mother_alive, mother_working, mother_occupation,
			    marksheet_upload, aadhar_no, cap_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			 RETURNING id`,
			r.name, r.courseName, r.yearOfStudy, r.studentSalaried,
			r.fatherAlive, r.fatherWorking, r.fatherOccupation,
			r.motherAlive, r.motherWorking, r.motherOccupation,
			r.marksheetUpload, r.aadharNo, r.capID,
		).Scan(&id)
		if err != nil {
			log.Fatal().Err(err).Str("name", r.name).Msg("Failed to seed application")
		}
		fmt.Printf("Seeded application %d: %s\n", id, r.name)
	}

	fmt.Println("Done.")
}
