// seed_test.go - Tests for YAML seeding

package database

import (
	"bytes"           // Fixed key material
	"encoding/base64" // Test key encoding
	"os"              // Test DB and seed file handling
	"path/filepath"   // Seed file paths
	"testing"         // Go's testing package

	"go-payraise-backend/crypto" // Field cipher
	"go-payraise-backend/models" // Table models
	"go-payraise-backend/store"  // Record store

	"github.com/stretchr/testify/assert" // For assertions
	"golang.org/x/crypto/bcrypt"         // Password verification
	"gorm.io/gorm"                       // GORM ORM
)

const seedYAML = `accounts:
  - username: admin1
    password: AdminPass1
    full_name: Alice Admin
    security_level: 1
    employee:
      name: Alice Admin
      email: alice.admin@example.com
      department: Executive
      security_level: 1
  - username: manager
    password: Manager1
    full_name: Bob Manager
    security_level: 2
    employee:
      name: Bob Manager
      email: bob.manager@example.com
      department: Operations
      security_level: 2

payraises:
  - username: admin1
    date: "2025-01-01"
    amount: "1250.00"
    comments: Annual merit increase
`

// setupSeed builds a fresh database, store and seed file.
func setupSeed(t *testing.T, dbFile string) (*gorm.DB, *store.Store, string) {
	t.Helper()
	_ = os.Remove(dbFile) // Remove old test DB if exists
	db, err := Connect(dbFile)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = os.Remove(dbFile) })

	key := base64.URLEncoding.EncodeToString(bytes.Repeat([]byte{0x11}, crypto.KeySize))
	cipher := crypto.NewFieldCipher(crypto.NewKeyManager(key, "unused.key"))
	st := store.New(db, cipher)

	seedPath := filepath.Join(t.TempDir(), "seed.yaml")
	assert.NoError(t, os.WriteFile(seedPath, []byte(seedYAML), 0o644))
	return db, st, seedPath
}

// TestSeedCreatesAccountsAndExampleRaise runs the seeder once and
// checks accounts, employee links, hashed passwords and the demo raise.
func TestSeedCreatesAccountsAndExampleRaise(t *testing.T) {
	db, st, seedPath := setupSeed(t, "test_seed.db")
	assert.NoError(t, Seed(db, st, seedPath))

	admin, err := st.FindUserByUsername("admin1")
	assert.NoError(t, err)
	assert.Equal(t, models.LevelAdmin, admin.SecurityLevel)
	assert.NotNil(t, admin.EmpID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("AdminPass1")))

	emp, err := st.FindEmployeeByID(*admin.EmpID)
	assert.NoError(t, err)
	assert.Equal(t, "Alice Admin", emp.Name)
	assert.Equal(t, "Executive", emp.Department)

	raises, err := st.ListPayRaisesForUser(admin.ID)
	assert.NoError(t, err)
	assert.Len(t, raises, 1)
	assert.Equal(t, "2025-01-01", raises[0].Date)
	assert.Equal(t, "1250.00", raises[0].Amount)
	assert.Equal(t, "Annual merit increase", raises[0].Comments)
}

// TestSeedIsIdempotent reruns the seeder and asserts nothing doubles.
func TestSeedIsIdempotent(t *testing.T) {
	db, st, seedPath := setupSeed(t, "test_seed_idempotent.db")
	assert.NoError(t, Seed(db, st, seedPath))
	assert.NoError(t, Seed(db, st, seedPath))

	var users, employees, raises int64
	assert.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.NoError(t, db.Model(&models.Employee{}).Count(&employees).Error)
	assert.NoError(t, db.Model(&models.PayRaise{}).Count(&raises).Error)
	assert.Equal(t, int64(2), users)
	assert.Equal(t, int64(2), employees)
	assert.Equal(t, int64(1), raises)
}

// TestSeedMissingFile surfaces the read error to the caller.
func TestSeedMissingFile(t *testing.T) {
	db, st, _ := setupSeed(t, "test_seed_missing.db")
	assert.Error(t, Seed(db, st, filepath.Join(t.TempDir(), "nope.yaml")))
}
