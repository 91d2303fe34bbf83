// Command fixtures seeds a development database with fake verified users
// and random likes between them.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"matchmeet/backend/internal/config"
	"matchmeet/backend/internal/models"
	"matchmeet/backend/internal/storage"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	interestPool = []string{"music", "travel", "coding", "sports", "movies", "cooking", "hiking", "reading"}
	titlePool    = []string{"event", "party", "study", "hobby", "game", "other"}
	contentPool  = []string{
		"Let's have fun together!",
		"We can enjoy together!",
		"I want to have a good time!",
		"I want to learn something new!",
		"I want to play something!",
		"I want to do other things!",
	}
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file loaded")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	svc := storage.NewService(db, nil) // no redis needed for fixtures

	if len(os.Args) < 2 {
		fmt.Println("Usage: fixtures <users|likes|recruitments> <count>")
		os.Exit(1)
	}
	count := 10
	if len(os.Args) > 2 {
		if count, err = strconv.Atoi(os.Args[2]); err != nil || count <= 0 {
			fmt.Println("Invalid count. Please provide a positive integer.")
			os.Exit(1)
		}
	}

	switch os.Args[1] {
	case "users":
		if err := seedUsers(svc, count); err != nil {
			log.Fatalf("Error seeding users: %v", err)
		}
		fmt.Printf("Seeded %d users.\n", count)
	case "likes":
		if err := seedLikes(svc, db, count); err != nil {
			log.Fatalf("Error seeding likes: %v", err)
		}
		fmt.Printf("Seeded %d likes.\n", count)
	case "recruitments":
		if err := seedRecruitments(svc, db, count); err != nil {
			log.Fatalf("Error seeding recruitments: %v", err)
		}
		fmt.Printf("Seeded %d recruitments.\n", count)
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func seedUsers(svc *storage.Service, count int) error {
	for i := 0; i < count; i++ {
		n := rand.Intn(1_000_000)
		user := &models.User{
			Username:    fmt.Sprintf("user%06d", n),
			Email:       fmt.Sprintf("user%06d@example.com", n),
			DateOfBirth: time.Date(1970+rand.Intn(35), time.Month(1+rand.Intn(12)), 1+rand.Intn(28), 0, 0, 0, 0, time.UTC),
			Verified:    true,
		}
		if err := user.SetPassword("password123"); err != nil {
			return err
		}

		interests := make([]string, 0, 3)
		for _, idx := range rand.Perm(len(interestPool))[:3] {
			interests = append(interests, interestPool[idx])
		}
		if _, err := svc.CreateUserWithProfile(user, "Generated fixture user.", interests); err != nil {
			return err
		}
	}
	return nil
}

func seedLikes(svc *storage.Service, db *gorm.DB, count int) error {
	var ids []uint
	if err := db.Model(&models.User{}).Pluck("id", &ids).Error; err != nil {
		return err
	}
	if len(ids) < 2 {
		return fmt.Errorf("need at least two users, run `fixtures users` first")
	}

	for i := 0; i < count; i++ {
		sender := ids[rand.Intn(len(ids))]
		receiver := ids[rand.Intn(len(ids))]
		if sender == receiver {
			continue
		}
		if _, err := svc.ToggleLike(sender, receiver); err != nil {
			return err
		}
	}
	return nil
}

func seedRecruitments(svc *storage.Service, db *gorm.DB, count int) error {
	var ids []uint
	if err := db.Model(&models.User{}).Pluck("id", &ids).Error; err != nil {
		return err
	}
	if len(ids) == 0 {
		return fmt.Errorf("no users found, run `fixtures users` first")
	}

	for i := 0; i < count; i++ {
		rec := models.Recruitment{
			UserID:  ids[rand.Intn(len(ids))],
			Title:   titlePool[rand.Intn(len(titlePool))],
			Content: contentPool[rand.Intn(len(contentPool))],
		}
		if err := svc.CreateRecruitment(&rec); err != nil {
			return err
		}
	}
	return nil
}
