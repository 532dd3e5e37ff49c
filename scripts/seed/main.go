package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"team-portal-backend/internal/config"
	"team-portal-backend/internal/database"
	"team-portal-backend/internal/database/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Seed file structures, matching scripts/seed/data.yaml
type SeedFile struct {
	Users []UserData `yaml:"users"`
	Teams []TeamData `yaml:"teams"`
}

type UserData struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
}

type TeamData struct {
	TeamName           string       `yaml:"team_name"`
	TeamDescription    string       `yaml:"team_description"`
	ApprovedByManager  string       `yaml:"approved_by_manager,omitempty"`
	ApprovedByDirector string       `yaml:"approved_by_director,omitempty"`
	DisplayOrder       int          `yaml:"display_order"`
	Members            []MemberData `yaml:"members"`
}

type MemberData struct {
	Name        string `yaml:"name"`
	Gender      string `yaml:"gender"`
	DateOfBirth string `yaml:"date_of_birth"`
	ContactNo   string `yaml:"contact_no"`
}

func main() {
	dataPath := flag.String("data", "scripts/seed/data.yaml", "path to the seed data file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	raw, err := os.ReadFile(*dataPath)
	if err != nil {
		log.Fatalf("Failed to read seed file %s: %v", *dataPath, err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	if err := seedUsers(db, seed.Users); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	if err := seedTeams(db, seed.Teams); err != nil {
		log.Fatalf("Failed to seed teams: %v", err)
	}

	log.Printf("Seeded %d users and %d teams", len(seed.Users), len(seed.Teams))
}

// seedUsers creates each user unless its email is already taken
func seedUsers(db *gorm.DB, users []UserData) error {
	for _, u := range users {
		role := models.UserRole(u.Role)
		if !role.IsValid() {
			return fmt.Errorf("user %s: unknown role %q", u.Email, u.Role)
		}

		var count int64
		if err := db.Model(&models.User{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			log.Printf("User %s already exists, skipping", u.Email)
			continue
		}

		user := &models.User{
			Email: u.Email,
			Name:  u.Name,
			Role:  role,
		}
		if err := user.SetPassword(u.Password, 0); err != nil {
			return err
		}
		if err := db.Create(user).Error; err != nil {
			return err
		}
		log.Printf("Created user %s (%s)", u.Email, u.Role)
	}
	return nil
}

// seedTeams creates each team with its members unless the name is taken
func seedTeams(db *gorm.DB, teams []TeamData) error {
	for _, t := range teams {
		var count int64
		if err := db.Model(&models.Team{}).Where("team_name = ?", t.TeamName).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			log.Printf("Team %q already exists, skipping", t.TeamName)
			continue
		}

		members := make([]models.TeamMember, len(t.Members))
		for i, m := range t.Members {
			dob, err := time.Parse("2006-01-02", m.DateOfBirth)
			if err != nil {
				return fmt.Errorf("team %q member %q: %w", t.TeamName, m.Name, err)
			}
			gender := models.Gender(m.Gender)
			if !gender.IsValid() {
				return fmt.Errorf("team %q member %q: unknown gender %q", t.TeamName, m.Name, m.Gender)
			}
			members[i] = models.TeamMember{
				Position:    i,
				Name:        m.Name,
				Gender:      gender,
				DateOfBirth: dob,
				ContactNo:   m.ContactNo,
			}
		}

		team := &models.Team{
			TeamName:           t.TeamName,
			TeamDescription:    t.TeamDescription,
			ApprovedByManager:  approvalOrPending(t.ApprovedByManager),
			ApprovedByDirector: approvalOrPending(t.ApprovedByDirector),
			DisplayOrder:       t.DisplayOrder,
			Members:            members,
		}
		if err := db.Create(team).Error; err != nil {
			return err
		}
		log.Printf("Created team %q with %d members", t.TeamName, len(members))
	}
	return nil
}

func approvalOrPending(value string) models.ApprovalState {
	if value == "" {
		return models.ApprovalPending
	}
	return models.ApprovalState(value)
}
