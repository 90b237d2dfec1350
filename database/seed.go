// seed.go - YAML-driven seeding of accounts, employees and demo data
// Idempotent: existing usernames are kept, the user→employee link is
// repaired on reruns, and the example raise is only inserted when the
// account has none yet.

package database // Declares the package name

import ( // Import required packages
	"errors" // Error inspection
	"fmt"    // Error wrapping
	"os"     // Seed file access
	"strconv" // Amount parsing

	"go-payraise-backend/models" // Table models
	"go-payraise-backend/store"  // Record store (applies encryption)

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gopkg.in/yaml.v3"           // Seed file format
	"gorm.io/gorm"               // GORM ORM
)

// seedFile mirrors the YAML layout: accounts with their employee
// records, plus optional pay raises keyed by username.
type seedFile struct {
	Accounts []struct {
		Username      string `yaml:"username"`
		Password      string `yaml:"password"`
		FullName      string `yaml:"full_name"`
		SecurityLevel int    `yaml:"security_level"`
		Employee      struct {
			Name          string `yaml:"name"`
			Email         string `yaml:"email"`
			Department    string `yaml:"department"`
			SecurityLevel int    `yaml:"security_level"`
		} `yaml:"employee"`
	} `yaml:"accounts"`
	PayRaises []struct {
		Username string `yaml:"username"`
		Date     string `yaml:"date"`
		Amount   string `yaml:"amount"`
		Comments string `yaml:"comments"`
	} `yaml:"payraises"`
}

// Seed - Loads the YAML file and inserts any missing accounts,
// employees and pay raises through the store.
func Seed(db *gorm.DB, st *store.Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	for _, acct := range sf.Accounts {
		if acct.Username == "" || acct.Password == "" {
			continue
		}

		// Insert the employee record if missing (matched by name+email).
		var emp models.Employee
		err := db.Where("name = ? AND email = ?", acct.Employee.Name, acct.Employee.Email).First(&emp).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created, cerr := st.CreateEmployee(acct.Employee.Name, acct.Employee.Email, acct.Employee.Department, acct.Employee.SecurityLevel)
			if cerr != nil {
				return cerr
			}
			emp = *created
		} else if err != nil {
			return err
		}

		// Insert the account if missing.
		user, err := st.FindUserByUsername(acct.Username)
		if errors.Is(err, store.ErrNotFound) {
			hash, herr := bcrypt.GenerateFromPassword([]byte(acct.Password), bcrypt.DefaultCost)
			if herr != nil {
				return herr
			}
			empID := emp.ID
			user, err = st.CreateUser(acct.Username, string(hash), acct.FullName, acct.SecurityLevel, &empID)
			if err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		// Keep the relationship linked even if the user existed earlier.
		if user.EmpID == nil || *user.EmpID != emp.ID {
			if err := st.LinkUserToEmployee(user.ID, emp.ID); err != nil {
				return err
			}
		}
	}

	for _, raise := range sf.PayRaises {
		user, err := st.FindUserByUsername(raise.Username)
		if err != nil {
			return fmt.Errorf("seed payraise for %s: %w", raise.Username, err)
		}
		if user.EmpID == nil {
			continue // Cannot attach a raise without an employee record
		}
		existing, err := st.ListPayRaisesForUser(user.ID)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			continue // Only seed the example raise once
		}
		amount, err := strconv.ParseFloat(raise.Amount, 64)
		if err != nil {
			return fmt.Errorf("seed payraise for %s: bad amount %q", raise.Username, raise.Amount)
		}
		if _, err := st.CreatePayRaise(user.ID, *user.EmpID, raise.Date, amount, raise.Comments); err != nil {
			return err
		}
	}
	return nil
}
