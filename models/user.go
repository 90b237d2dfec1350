// user.go - Defines the User model for the database

package models // Declares the package name

// Security levels (lower number = more privileged)
const (
	LevelAdmin   = 1 // Full administrative access
	LevelManager = 2 // Manager access
	LevelStaff   = 3 // Least privileged
)

type User struct { // User struct represents a login account in the database
	ID            uint   `gorm:"primaryKey;column:id"`                 // Unique user ID (primary key)
	Username      string `gorm:"column:username;unique;not null"`      // Login name (must be unique, cannot be null)
	PasswordHash  string `gorm:"column:password_hash;not null"`        // Bcrypt password hash (cannot be null)
	FullName      string `gorm:"column:full_name"`                     // Display name
	SecurityLevel int    `gorm:"column:security_level;not null"`       // Privilege tier (1=admin, 2=manager, 3=staff)
	EmpID         *uint  `gorm:"column:emp_id"`                        // Optional link to an Employee record
	Employee      *Employee `gorm:"foreignKey:EmpID;references:ID"`    // Foreign key constraint to Employees
}

// TableName pins the legacy table name used by the existing database.
func (User) TableName() string {
	return "Users"
}
