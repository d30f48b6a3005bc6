package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/maxgads/gymmax/internal/config"
	"github.com/maxgads/gymmax/internal/domain"
	"github.com/maxgads/gymmax/internal/repository"
	"github.com/maxgads/gymmax/internal/service"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seeds a starter Push/Pull/Legs routine for a user, so fresh installs have
// something to train with before building their own plan.
//
//	go run ./cmd/seed/routines -user <user-id>
func main() {
	userID := flag.String("user", "", "user id to seed the starter routine for")
	flag.Parse()
	if *userID == "" {
		log.Fatal("-user is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDB.URI))
	if err != nil {
		log.Fatalf("Failed to connect to Mongo: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB.Database)
	routineService := service.NewRoutineService(repository.NewMongoRoutineRepository(db))

	routine := &domain.Routine{
		Name:        "Push / Pull / Legs",
		Description: "Starter 3-day split",
		Days: []domain.Day{
			{
				Name:  "Push",
				Order: 0,
				WarmUpExercises: []domain.Exercise{
					{Name: "Rotación de hombros con banda", Sets: "2", Reps: "15"},
				},
				Exercises: []domain.Exercise{
					{Name: "Press banca", Sets: "4", Reps: "6-8"},
					{Name: "Press militar", Sets: "3", Reps: "8-10"},
					{Name: "Fondos", Sets: "3", Reps: "Al fallo"},
					{Name: "Elevaciones laterales", Sets: "3", Reps: "12-15"},
				},
			},
			{
				Name:  "Pull",
				Order: 1,
				Exercises: []domain.Exercise{
					{Name: "Dominadas", Sets: "4", Reps: "6-10"},
					{Name: "Remo con barra", Sets: "4", Reps: "8-10"},
					{Name: "Curl de bíceps", Sets: "3", Reps: "10-12"},
					{Name: "Face pull", Sets: "3", Reps: "15"},
				},
			},
			{
				Name:  "Legs",
				Order: 2,
				WarmUpExercises: []domain.Exercise{
					{Name: "Bici estática", Sets: "1", Reps: "5 min"},
				},
				Exercises: []domain.Exercise{
					{Name: "Sentadilla", Sets: "4", Reps: "5-8"},
					{Name: "Peso muerto rumano", Sets: "3", Reps: "8-10"},
					{Name: "Prensa", Sets: "3", Reps: "10-12"},
					{Name: "Gemelos", Sets: "4", Reps: "12-15"},
				},
			},
		},
	}

	created, err := routineService.Create(ctx, *userID, routine)
	if err != nil {
		log.Fatalf("Failed to seed routine: %v", err)
	}
	fmt.Printf("Seeded routine %s (%d days) for user %s\n", created.ID, len(created.Days), *userID)
}
