// employees.go - Handles employee administration endpoints
// Both endpoints sit behind RequireLevel guards; see main.go for the
// route wiring and policy/policy.go for the level matrix.

package handlers // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes

	"go-payraise-backend/validation" // Field-level error messages

	"github.com/gin-gonic/gin" // Gin web framework
)

type EmployeeInput struct { // Struct for add-employee input
	Name          string `json:"name" binding:"required"`                  // Employee name (required)
	Email         string `json:"email"`                                    // Work email
	Department    string `json:"department" binding:"required"`            // Department (required)
	SecurityLevel int    `json:"security_level" binding:"required,oneof=1 2 3"` // Tier 1-3 (required)
}

// AddEmployee - Handler creating a new employee record.
func (h *Handler) AddEmployee(c *gin.Context) {
	var input EmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{
			"errors":  validation.Messages(err),
			"message": "Employee not added due to input errors.",
		})
		return
	}

	emp, err := h.Store.CreateEmployee(input.Name, input.Email, input.Department, input.SecurityLevel)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add employee"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Employee added successfully.",
		"employee": emp,
	})
}

// ListEmployees - Handler returning all employees ordered by name.
func (h *Handler) ListEmployees(c *gin.Context) {
	employees, err := h.Store.ListEmployees()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list employees"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": employees})
}
