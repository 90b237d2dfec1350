// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"go-payraise-backend/models" // Table models

	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM
)

// Connect opens the SQLite database, enables foreign key enforcement
// and migrates the three legacy tables (Users, Employees, EmpPayRaise).
// The handle is returned rather than held in a global so tests and main
// can wire their own instances.
func Connect(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// SQLite leaves FK checks off unless asked; the pay-raise insert
	// relies on them as a second line behind the store's own checks.
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}

	// Auto-migrate the models (create tables if needed).
	// Employees first so the FK references resolve.
	if err := db.AutoMigrate(&models.Employee{}, &models.User{}, &models.PayRaise{}); err != nil {
		return nil, err
	}

	return db, nil
}
