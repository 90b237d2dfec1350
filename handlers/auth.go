// auth.go - Handles user login and logout

package handlers // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes
	"time"     // For token expiration

	"go-payraise-backend/middleware" // Context keys
	"go-payraise-backend/validation" // Field-level error messages

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/golang-jwt/jwt/v5" // JWT library
	"golang.org/x/crypto/bcrypt"   // Password hashing
)

type LoginInput struct { // Struct for login input
	Username string `json:"username" binding:"required"` // Username (required)
	Password string `json:"password" binding:"required"` // Password (required)
}

// Login - Handler for user login. Issues an HS256 session token
// carrying the user id, security level and employee link.
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Messages(err)})
		return
	}

	// Uniform failure message: username lookup and password check are
	// indistinguishable to the caller.
	user, err := h.Store.FindUserByUsername(input.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username and/or password!"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username and/or password!"})
		return
	}

	// JWT generation: the token is the authenticated session. All
	// access checks later read these claims, never raw request input.
	claims := jwt.MapClaims{
		middleware.CtxUserID:        user.ID,
		middleware.CtxSecurityLevel: user.SecurityLevel,
		"exp":                       time.Now().Add(time.Hour * 72).Unix(), // Set expiration (72 hours)
	}
	if user.EmpID != nil {
		claims[middleware.CtxEmpID] = *user.EmpID
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(h.Cfg.JWTSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     tokenString,
		"full_name": user.FullName,
		"message":   "Logged in successfully.",
	})
}

// Logout - Handler for user logout. Sessions live in the bearer token,
// so the server side only acknowledges; the client discards the token.
func (h *Handler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "You have been logged out."})
}
