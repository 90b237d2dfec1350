// payraises.go - Handles pay-raise submission and viewing
// Plaintext raise values only exist inside request handling; the store
// seals them before anything reaches the database.

package handlers // Declares the package name

import ( // Import required packages
	"errors"   // Error inspection
	"net/http" // HTTP status codes
	"strconv"  // Amount parsing
	"strings"  // Whitespace trimming

	"go-payraise-backend/middleware" // Context keys
	"go-payraise-backend/store"      // Record store errors
	"go-payraise-backend/validation" // Field-level error messages

	"github.com/gin-gonic/gin" // Gin web framework
)

type PayRaiseInput struct { // Struct for add-pay-raise input
	Date     string `json:"payraise_date" binding:"required,payraisedate"`  // Raise date YYYY-MM-DD (required)
	Amount   string `json:"raise_amount" binding:"required,positiveamount"` // Positive amount (required)
	Comments string `json:"comments"`                                       // Optional comment
}

// AddPayRaise - Handler letting any authenticated user record a pay
// raise for themselves.
func (h *Handler) AddPayRaise(c *gin.Context) {
	// STEP 1: Validate input; failures come back as field messages.
	var input PayRaiseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors":  validation.Messages(err),
			"message": "Record not added due to input errors.",
		})
		return
	}

	// STEP 2: The raise attaches to the session's own employee record.
	// An account without one gets the uniform not-found response.
	userID := c.GetUint(middleware.CtxUserID)
	empIDValue, hasEmp := c.Get(middleware.CtxEmpID)
	if !hasEmp {
		middleware.NotFound(c)
		return
	}
	empID := empIDValue.(uint)

	// STEP 3: Persist through the store (encrypts before writing).
	amount, err := strconv.ParseFloat(strings.TrimSpace(input.Amount), 64)
	if err != nil { // Already screened by the positiveamount validator
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"RaiseAmt must be a positive number."}})
		return
	}
	if _, err := h.Store.CreatePayRaise(userID, empID, input.Date, amount, input.Comments); err != nil {
		if errors.Is(err, store.ErrReferentialIntegrity) {
			// Generic failure outward; the store rejected the references.
			c.JSON(http.StatusBadRequest, gin.H{"error": "Record not added."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Record not added."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Record added"})
}

// ShowPayRaises - Handler returning the session user's own pay raises
// with decrypted values.
func (h *Handler) ShowPayRaises(c *gin.Context) {
	userID := c.GetUint(middleware.CtxUserID)
	raises, err := h.Store.ListPayRaisesForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list pay raises"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payraises": raises})
}

// ListAllPayRaises - Handler returning every pay raise. Route access is
// enforced by the RequireLevel guard in front of it (managers only).
func (h *Handler) ListAllPayRaises(c *gin.Context) {
	raises, err := h.Store.ListAllPayRaises()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list pay raises"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payraises": raises})
}
