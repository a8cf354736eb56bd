package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"library-circulation/internal/config"
	"library-circulation/internal/flash"
	"library-circulation/internal/handlers"
	"library-circulation/internal/postgres"
)

func main() {
	// Load environment variables from .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file - using system environment variables")
	}

	cfg := config.Load()

	// Connect to the database
	client, err := postgres.New(context.Background(), cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer client.Close()
	log.Printf("Connected to database %s on %s", cfg.Database.Name, cfg.Database.Host)

	flashes := flash.NewSigner(cfg.FlashSecret)

	// Router and request middleware
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Static files (CSS)
	fileServer := http.FileServer(http.Dir("./static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	// Handlers
	booksHandler := handlers.NewBooksHandler(client, flashes)
	membersHandler := handlers.NewMembersHandler(client, flashes)
	loansHandler := handlers.NewLoansHandler(client, client, flashes)

	// Books and copies
	r.Get("/", booksHandler.IndexHandler)
	r.Post("/add_book", booksHandler.AddBookHandler)

	// Members
	r.Get("/members", membersHandler.ListMembersHandler)
	r.Post("/members", membersHandler.CreateMemberHandler)

	// Loans
	r.Get("/loans", loansHandler.ListLoansHandler)
	r.Post("/loans", loansHandler.LoanActionHandler)

	log.Printf("Server listening on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
