// employee.go - Defines the Employee model for the database

package models // Declares the package name

type Employee struct { // Employee struct represents a staff member record
	ID            uint   `gorm:"primaryKey;column:id"`              // Unique employee ID (primary key)
	Name          string `gorm:"column:name;not null"`              // Employee name (cannot be null)
	Email         string `gorm:"column:email"`                      // Work email
	Department    string `gorm:"column:department"`                 // Department name
	SecurityLevel int    `gorm:"column:security_level;default:3"`   // Privilege tier, least privileged by default
}

// TableName pins the legacy table name used by the existing database.
func (Employee) TableName() string {
	return "Employees"
}
