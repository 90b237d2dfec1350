// validation.go - Input validation helpers and gin binding validators
// Validation errors are recovered locally and surfaced to the submitter
// as a list of field-level messages; they are never fatal.

package validation // Declares the package name

import ( // Import required packages
	"errors"  // Error inspection
	"strconv" // Amount parsing
	"strings" // Whitespace trimming
	"time"    // Calendar-strict date parsing

	"github.com/gin-gonic/gin/binding"       // Gin's binding engine
	"github.com/go-playground/validator/v10" // Validator backing gin binding
)

// dateLayout is the only accepted raise-date format.
const dateLayout = "2006-01-02"

// IsValidDate - Reports whether the string is a non-empty, calendar-valid
// date in YYYY-MM-DD form. "2025-02-30" is well-formed but rejected.
func IsValidDate(dateStr string) bool {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return false
	}
	// time.Parse is calendar-strict: out-of-range days fail.
	_, err := time.Parse(dateLayout, dateStr)
	return err == nil
}

// IsPositiveNumber - Reports whether the string is a strictly positive
// numeric value. "0" and "-5" fail; "12.50" passes.
func IsPositiveNumber(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return false
	}
	return n > 0
}

// Register - Installs the custom binding validators used by the pay-raise
// input structs. Call once before routes are served (and in tests).
func Register() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("payraisedate", func(fl validator.FieldLevel) bool {
		return IsValidDate(fl.Field().String())
	})
	_ = v.RegisterValidation("positiveamount", func(fl validator.FieldLevel) bool {
		return IsPositiveNumber(fl.Field().String())
	})
}

// fieldMessages maps struct field + failed tag to the message shown to
// the submitting user. Wording carried over from the existing system.
var fieldMessages = map[string]string{
	"Date/payraisedate":       "PayRaiseDate must be a valid date (YYYY-MM-DD).",
	"Date/required":           "PayRaiseDate must be a valid date (YYYY-MM-DD).",
	"Amount/positiveamount":   "RaiseAmt must be a positive number.",
	"Amount/required":         "RaiseAmt must be a positive number.",
	"Name/required":           "Employee name is required.",
	"Department/required":     "Department is required.",
	"SecurityLevel/required":  "Security level is required.",
	"SecurityLevel/oneof":     "Security level must be 1, 2, or 3.",
	"Username/required":       "Username is required.",
	"Password/required":       "Password is required.",
}

// Messages - Converts a binding error into field-level messages.
// Unrecognized errors collapse into one generic message so internals
// never leak to the client.
func Messages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Invalid request body."}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if msg, ok := fieldMessages[fe.Field()+"/"+fe.Tag()]; ok {
			msgs = append(msgs, msg)
		} else {
			msgs = append(msgs, fe.Field()+" is invalid.")
		}
	}
	return msgs
}
