// payraise_test.go - Tests for pay-raise persistence and encryption at rest

package store_test

import (
	"testing" // Go's testing package

	"go-payraise-backend/models" // Table models
	"go-payraise-backend/store"  // Package under test

	"github.com/stretchr/testify/assert" // For assertions
)

// TestCreatePayRaiseRoundTrip submits one raise and reads it back
// decrypted through the listing.
func TestCreatePayRaiseRoundTrip(t *testing.T) {
	st, _ := setupStore(t, "test_payraise_roundtrip.db")
	user := seedAccount(t, st, "roundtrip", models.LevelManager)

	_, err := st.CreatePayRaise(user.ID, *user.EmpID, "2025-01-01", 1250.00, "Annual merit increase")
	assert.NoError(t, err)

	raises, err := st.ListPayRaisesForUser(user.ID)
	assert.NoError(t, err)
	assert.Len(t, raises, 1)
	assert.Equal(t, "2025-01-01", raises[0].Date)
	assert.Equal(t, "1250.00", raises[0].Amount)
	assert.Equal(t, "$1250.00", raises[0].AmountDisplay)
	assert.Equal(t, "Annual merit increase", raises[0].Comments)
	assert.Equal(t, "roundtrip employee", raises[0].EmployeeName)
	assert.False(t, raises[0].Unreadable)
}

// TestPayRaiseStoredOnlyAsCiphertext reads the raw row and asserts no
// plaintext reached the database.
func TestPayRaiseStoredOnlyAsCiphertext(t *testing.T) {
	st, db := setupStore(t, "test_payraise_ciphertext.db")
	user := seedAccount(t, st, "atrest", models.LevelStaff)

	_, err := st.CreatePayRaise(user.ID, *user.EmpID, "2025-03-15", 500.00, "confidential note")
	assert.NoError(t, err)

	var raw models.PayRaise
	assert.NoError(t, db.First(&raw).Error)
	assert.NotContains(t, string(raw.DateEncrypted), "2025-03-15")
	assert.NotContains(t, string(raw.AmountEncrypted), "500.00")
	assert.NotContains(t, string(raw.CommentsEncrypted), "confidential")
}

// TestCreatePayRaiseOptionalComment stores NULL when no comment given.
func TestCreatePayRaiseOptionalComment(t *testing.T) {
	st, db := setupStore(t, "test_payraise_nocomment.db")
	user := seedAccount(t, st, "nocomment", models.LevelStaff)

	_, err := st.CreatePayRaise(user.ID, *user.EmpID, "2025-02-01", 10.00, "")
	assert.NoError(t, err)

	var raw models.PayRaise
	assert.NoError(t, db.First(&raw).Error)
	assert.Nil(t, raw.CommentsEncrypted)

	raises, err := st.ListPayRaisesForUser(user.ID)
	assert.NoError(t, err)
	assert.Len(t, raises, 1)
	assert.Equal(t, "", raises[0].Comments)
}

// TestCreatePayRaiseReferentialIntegrity rejects raises referencing a
// missing employee or user, and persists no row either way.
func TestCreatePayRaiseReferentialIntegrity(t *testing.T) {
	st, db := setupStore(t, "test_payraise_refint.db")
	user := seedAccount(t, st, "refint", models.LevelStaff)

	// Missing employee
	_, err := st.CreatePayRaise(user.ID, 9999, "2025-01-01", 100.00, "")
	assert.ErrorIs(t, err, store.ErrReferentialIntegrity)

	// Missing user
	_, err = st.CreatePayRaise(9999, *user.EmpID, "2025-01-01", 100.00, "")
	assert.ErrorIs(t, err, store.ErrReferentialIntegrity)

	var count int64
	assert.NoError(t, db.Model(&models.PayRaise{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

// TestListPayRaisesNewestFirst verifies most-recently-created ordering.
func TestListPayRaisesNewestFirst(t *testing.T) {
	st, _ := setupStore(t, "test_payraise_order.db")
	user := seedAccount(t, st, "ordering", models.LevelStaff)

	for _, date := range []string{"2025-01-01", "2025-02-01", "2025-03-01"} {
		_, err := st.CreatePayRaise(user.ID, *user.EmpID, date, 100.00, "")
		assert.NoError(t, err)
	}

	raises, err := st.ListPayRaisesForUser(user.ID)
	assert.NoError(t, err)
	assert.Len(t, raises, 3)
	assert.Equal(t, "2025-03-01", raises[0].Date)
	assert.Equal(t, "2025-02-01", raises[1].Date)
	assert.Equal(t, "2025-01-01", raises[2].Date)
}

// TestCorruptedRowDegradesNotFails corrupts one row's ciphertext and
// asserts the listing still returns every record, flagging only the
// damaged one.
func TestCorruptedRowDegradesNotFails(t *testing.T) {
	st, db := setupStore(t, "test_payraise_corrupt.db")
	user := seedAccount(t, st, "corrupt", models.LevelStaff)

	intact, err := st.CreatePayRaise(user.ID, *user.EmpID, "2025-01-01", 100.00, "fine")
	assert.NoError(t, err)
	damaged, err := st.CreatePayRaise(user.ID, *user.EmpID, "2025-02-01", 200.00, "doomed")
	assert.NoError(t, err)

	// Overwrite the amount ciphertext with junk directly.
	assert.NoError(t, db.Exec(
		"UPDATE EmpPayRaise SET raiseamt_encrypted = ? WHERE id = ?",
		[]byte("garbage bytes"), damaged.ID,
	).Error)

	raises, err := st.ListPayRaisesForUser(user.ID)
	assert.NoError(t, err)
	assert.Len(t, raises, 2)

	// Newest first: the damaged row leads.
	assert.Equal(t, damaged.ID, raises[0].ID)
	assert.True(t, raises[0].Unreadable)
	assert.Equal(t, store.Unreadable, raises[0].Amount)
	assert.Equal(t, "2025-02-01", raises[0].Date) // Untouched fields still open

	assert.Equal(t, intact.ID, raises[1].ID)
	assert.False(t, raises[1].Unreadable)
	assert.Equal(t, "100.00", raises[1].Amount)
}

// TestListAllPayRaises covers the cross-user listing.
func TestListAllPayRaises(t *testing.T) {
	st, _ := setupStore(t, "test_payraise_all.db")
	alice := seedAccount(t, st, "alice", models.LevelManager)
	bob := seedAccount(t, st, "bob", models.LevelStaff)

	_, err := st.CreatePayRaise(alice.ID, *alice.EmpID, "2025-01-01", 100.00, "")
	assert.NoError(t, err)
	_, err = st.CreatePayRaise(bob.ID, *bob.EmpID, "2025-02-01", 200.00, "")
	assert.NoError(t, err)

	raises, err := st.ListAllPayRaises()
	assert.NoError(t, err)
	assert.Len(t, raises, 2)
	assert.Equal(t, bob.ID, raises[0].UserID)
	assert.Equal(t, alice.ID, raises[1].UserID)
}
