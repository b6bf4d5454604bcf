package main

import (
	"log"

	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
	"github.com/kamplisrinivas/mom-meeting-system/internal/infrastructure/database"
	"github.com/kamplisrinivas/mom-meeting-system/internal/usecase/auth"
	"github.com/kamplisrinivas/mom-meeting-system/pkg/config"
)

// Seeds a development database with departments, login accounts and
// their linked employee records. Safe to re-run: existing seed rows
// are removed first.
func main() {
	log.Println("🚀 Starting development data seed...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	log.Println("🗑️  Cleaning up existing seed data...")
	db.Where("code LIKE ?", "SEED-%").Delete(&entities.Employee{})
	db.Where("email LIKE ?", "%@seed.local").Delete(&entities.User{})

	var engineering entities.Department
	if err := db.Where(entities.Department{Name: "Engineering"}).FirstOrCreate(&engineering).Error; err != nil {
		log.Fatalf("❌ Failed to create department: %v", err)
	}
	var operations entities.Department
	if err := db.Where(entities.Department{Name: "Operations"}).FirstOrCreate(&operations).Error; err != nil {
		log.Fatalf("❌ Failed to create department: %v", err)
	}

	seedUsers := []struct {
		Email string
		Name  string
		Role  entities.UserRole
		Code  string
		Dept  *entities.Department
	}{
		{Email: "admin@seed.local", Name: "Admin", Role: entities.RoleAdmin, Code: "SEED-001", Dept: &engineering},
		{Email: "manager@seed.local", Name: "Manager", Role: entities.RoleManager, Code: "SEED-002", Dept: &engineering},
		{Email: "employee@seed.local", Name: "Employee", Role: entities.RoleEmployee, Code: "SEED-003", Dept: &operations},
	}

	log.Println("🔑 Creating seed users and employees...")

	for _, seed := range seedUsers {
		hash, err := auth.HashPassword("password123")
		if err != nil {
			log.Fatalf("❌ Failed to hash password: %v", err)
		}

		user := entities.NewUser(seed.Email, seed.Name, hash)
		user.Role = seed.Role
		user.DepartmentID = &seed.Dept.ID
		if err := db.Create(user).Error; err != nil {
			log.Printf("❌ Failed to create user %s: %v", seed.Email, err)
			continue
		}

		email := seed.Email
		employee := &entities.Employee{
			Code:         seed.Code,
			Name:         seed.Name,
			CompanyEmail: &email,
			DepartmentID: seed.Dept.ID,
			UserID:       &user.ID,
			IsActive:     true,
		}
		if err := db.Create(employee).Error; err != nil {
			log.Printf("❌ Failed to create employee %s: %v", seed.Code, err)
			continue
		}

		log.Printf("✅ Created %s (%s / password123)", seed.Name, seed.Email)
	}

	log.Println("✅ Seed complete")
}
