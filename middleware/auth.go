// auth.go - JWT authentication and access-policy middleware
// This file implements authentication and authorization for the API
//
// Authentication Flow:
// 1. Extract JWT token from Authorization header
// 2. Validate token signature and expiration
// 3. Extract user ID, security level and employee link from claims
// 4. Store them in the request context for handlers
//
// Authorization Flow:
// 1. Run authentication middleware first
// 2. Read the security level from the authenticated context (never
//    from raw request input)
// 3. Evaluate the view's access requirement
// 4. On denial, answer 404 "not found" - denied and nonexistent routes
//    are indistinguishable so privileged paths cannot be enumerated

package middleware // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes (200, 401, 404, etc.)
	"strings"  // String operations (for header parsing)

	"go-payraise-backend/config" // Project config (for JWT secret)
	"go-payraise-backend/policy" // Access policy

	"github.com/gin-gonic/gin"     // Gin web framework (for middleware)
	"github.com/golang-jwt/jwt/v5" // JWT library (for token validation)
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	CtxUserID        = "user_id"        // uint
	CtxSecurityLevel = "security_level" // int
	CtxEmpID         = "emp_id"         // uint, only set when the account links to an employee
)

// NotFound - The uniform denial/unknown-route response body.
func NotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Page not found"})
}

// AuthMiddleware - Returns a Gin middleware function for JWT authentication.
// Validates the bearer token and copies the session claims into the
// Gin context so handlers never re-parse the token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// STEP 1: Extract Authorization header in "Bearer <token>" form
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}

		// STEP 2: Parse and validate the JWT
		tokenStr := strings.TrimPrefix(header, "Bearer ")
		cfg := config.Load()
		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// STEP 3: Copy session claims into the context.
		// JWT numbers arrive as float64 and are converted here once.
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		userID, okUser := claims[CtxUserID].(float64)
		level, okLevel := claims[CtxSecurityLevel].(float64)
		if !okUser || !okLevel {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(CtxUserID, uint(userID))
		c.Set(CtxSecurityLevel, int(level))
		if empID, okEmp := claims[CtxEmpID].(float64); okEmp {
			c.Set(CtxEmpID, uint(empID))
		}

		c.Next() // Continue to next handler (authentication successful)
	}
}

// RequireLevel - Returns a Gin middleware enforcing one access
// requirement. Composes after AuthMiddleware; a missing session level
// is always denied. Denials render exactly like unknown routes.
func RequireLevel(req policy.Requirement) gin.HandlerFunc {
	return func(c *gin.Context) {
		var level *int
		if v, exists := c.Get(CtxSecurityLevel); exists {
			if lvl, ok := v.(int); ok {
				level = &lvl
			}
		}
		if !policy.Authorize(level, req) {
			NotFound(c)
			return
		}
		c.Next() // Continue to next handler (access granted)
	}
}
