package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"library-circulation/internal/config"
	"library-circulation/internal/postgres"
)

type seedBook struct {
	Title     string
	ISBN      string
	Publisher string
	Category  string
	Copies    int
	Location  string
	Price     float64
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file - using system environment variables")
	}

	cfg := config.Load()
	ctx := context.Background()

	client, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer client.Close()

	log.Println("Seeding the catalog with sample data...")

	books := []seedBook{
		{
			Title:     "Dune",
			ISBN:      "978-0-441-17271-9",
			Publisher: "Ace Books",
			Category:  "Sci-Fi",
			Copies:    3,
			Location:  "A-12",
			Price:     14.99,
		},
		{
			Title:     "The Name of the Wind",
			ISBN:      "978-0-7564-0474-1",
			Publisher: "DAW Books",
			Category:  "Fantasy",
			Copies:    2,
			Location:  "A-03",
			Price:     11.50,
		},
		{
			Title:     "Crime and Punishment",
			ISBN:      "978-0-14-044913-6",
			Publisher: "Penguin Classics",
			Category:  "Classics",
			Copies:    2,
			Location:  "B-05",
			Price:     9.99,
		},
		{
			Title:     "Sapiens: A Brief History of Humankind",
			ISBN:      "978-0-06-231609-7",
			Publisher: "Harper",
			Category:  "Non-fiction",
			Copies:    4,
			Location:  "C-18",
			Price:     18.00,
		},
		{
			Title:     "1984",
			ISBN:      "978-0-452-28423-4",
			Publisher: "Penguin Classics",
			Category:  "Classics",
			Copies:    3,
			Location:  "B-07",
			Price:     8.99,
		},
	}

	for _, sb := range books {
		book, err := client.CreateBook(ctx, sb.Title, sb.ISBN, sb.Publisher, sb.Category)
		if err != nil {
			log.Fatalf("Failed to create book %q: %v", sb.Title, err)
		}

		for i := 0; i < sb.Copies; i++ {
			accessionNo := "ACC-" + strings.ToUpper(uuid.NewString()[:8])
			if _, err := client.AddCopy(ctx, book.ID, accessionNo, sb.Location, sb.Price); err != nil {
				log.Fatalf("Failed to add copy of %q: %v", sb.Title, err)
			}
		}

		log.Printf("Added %q with %d copies", sb.Title, sb.Copies)
	}

	members := []struct {
		FullName string
		Email    string
	}{
		{"Alice Morgan", "alice.morgan@example.com"},
		{"Brian Okafor", "brian.okafor@example.com"},
		{"Carla Jimenez", ""},
	}

	for _, m := range members {
		if _, err := client.CreateMember(ctx, m.FullName, m.Email); err != nil {
			log.Fatalf("Failed to create member %q: %v", m.FullName, err)
		}
		log.Printf("Added member %q", m.FullName)
	}

	fmt.Println("Seeding finished.")
}
