package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/cmlabs-hris/attendance-report-go/internal/config"
	"github.com/cmlabs-hris/attendance-report-go/internal/domain/staff"
	appHTTP "github.com/cmlabs-hris/attendance-report-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-report-go/internal/repository/csvfile"
	"github.com/cmlabs-hris/attendance-report-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/attendance-report-go/internal/service/extract"
	reportService "github.com/cmlabs-hris/attendance-report-go/internal/service/report"
	staffService "github.com/cmlabs-hris/attendance-report-go/internal/service/staff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var staffRepo staff.Repository
	switch cfg.Roster.Source {
	case "csv":
		staffRepo = csvfile.NewStaffRepository(cfg.Roster.CSVPath)
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		staffRepo = postgresql.NewStaffRepository(db)
	default:
		log.Fatal("Unsupported staff source: ", cfg.Roster.Source)
	}

	directory := staffService.NewDirectory(staffRepo)
	if err := directory.Load(context.Background()); err != nil {
		log.Fatal("Failed to load staff roster: ", err)
	}

	reportSvc := reportService.NewReportService(extract.New(), directory, cfg.Report, nil)

	reportHandler := appHTTP.NewReportHandler(reportSvc)
	staffHandler := appHTTP.NewStaffHandler(directory)

	router := appHTTP.NewRouter(cfg.App, reportHandler, staffHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
