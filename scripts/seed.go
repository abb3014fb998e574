// Seed creates the bootstrap accounts and a demo course so a fresh install
// is usable immediately.
//
//	go run scripts/seed.go -config configs
package main

import (
	"flag"
	"log"

	"skillforge_backend/internal/config"
	"skillforge_backend/internal/model"
	"skillforge_backend/internal/quiz"
	"skillforge_backend/pkg/database"
	"skillforge_backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	configPath := flag.String("config", "configs", "config directory")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg.ForceMigrate = true
	logger.InitLogger(cfg)

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("init db: %v", err)
	}

	admin := seedUser(db, "Admin", "admin@skillforge.dev", "admin-password", model.Admin)
	mentor := seedUser(db, "Demo Mentor", "mentor@skillforge.dev", "mentor-password", model.Mentor)
	seedUser(db, "Demo Student", "student@skillforge.dev", "student-password", model.Student)

	seedDemoCourse(db, mentor)

	log.Printf("seed complete (admin id %s)", admin.ID)
}

func seedUser(db *gorm.DB, name, email, password string, role model.UserRole) *model.User {
	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("user %s already exists, skipping", email)
		return &existing
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := db.Create(user).Error; err != nil {
		log.Fatalf("create user %s: %v", email, err)
	}
	log.Printf("created %s user %s", role, email)
	return user
}

func seedDemoCourse(db *gorm.DB, mentor *model.User) {
	var count int64
	db.Model(&model.Course{}).Count(&count)
	if count > 0 {
		log.Println("courses already present, skipping demo course")
		return
	}

	course := &model.Course{
		Title:          "Getting Started with Go",
		Description:    "A short introductory course used to verify the installation.",
		Difficulty:     quiz.Beginner,
		MentorID:       mentor.ID,
		InstructorName: mentor.Name,
		Topics:         model.StringList{"go", "basics"},
	}
	if err := db.Create(course).Error; err != nil {
		log.Fatalf("create demo course: %v", err)
	}

	demoQuiz := &model.Quiz{
		CourseID:   course.ID,
		Title:      "Go Basics Check",
		Difficulty: quiz.Beginner,
		CreatedBy:  mentor.ID,
		Questions: model.QuestionList{
			{
				ID:            model.GenerateUUID(),
				Kind:          quiz.MultipleChoice,
				Text:          "Which keyword declares a new variable with inferred type?",
				Options:       []string{"var", ":=", "let"},
				CorrectAnswer: ":=",
				Points:        10,
			},
			{
				ID:            model.GenerateUUID(),
				Kind:          quiz.ShortAnswer,
				Text:          "What is the zero value of a pointer?",
				CorrectAnswer: "nil",
				Points:        5,
			},
		},
	}
	if err := db.Create(demoQuiz).Error; err != nil {
		log.Fatalf("create demo quiz: %v", err)
	}
	log.Println("created demo course and quiz")
}
