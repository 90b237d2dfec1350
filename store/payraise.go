// payraise.go - Pay-raise persistence with encryption at rest
//
// Sensitive fields (date, amount, comments) are sealed by the field
// cipher before they hit the database and opened again on read.
// Listings degrade per record on decrypt failure: one corrupted row is
// flagged instead of hiding the rest of the result.

package store // Declares the package name

import ( // Import required packages
	"fmt" // Amount formatting
	"log" // Degraded-record logging

	"go-payraise-backend/models" // Table models

	"gorm.io/gorm" // GORM ORM
)

// Unreadable is the placeholder shown for a field whose ciphertext
// could not be opened (tampered row or key mismatch).
const Unreadable = "[unreadable]"

// PayRaiseView is one decrypted listing row.
type PayRaiseView struct {
	ID            uint   `json:"id,omitempty"`
	EmployeeName  string `json:"employee_name"`
	UserID        uint   `json:"user_id,omitempty"`
	Date          string `json:"payraise_date"`
	Amount        string `json:"raise_amount"`
	AmountDisplay string `json:"raise_amount_display,omitempty"`
	Comments      string `json:"comments"`
	Unreadable    bool   `json:"unreadable,omitempty"` // Set when any field failed decryption
}

// payRaiseRow is the raw join result before decryption.
type payRaiseRow struct {
	ID                uint
	UserID            uint
	EmployeeName      string
	DateEncrypted     []byte
	AmountEncrypted   []byte
	CommentsEncrypted []byte
}

// CreatePayRaise - Encrypts and persists one pay-raise record.
// Validation is the caller's job; the store only guarantees that the
// referenced employee and user exist, atomically with the insert.
func (s *Store) CreatePayRaise(userID, empID uint, date string, amount float64, comments string) (*models.PayRaise, error) {
	// Encrypt outside the transaction; plaintext stays in memory only.
	dateEnc, err := s.cipher.Encrypt(date)
	if err != nil {
		return nil, err
	}
	amountEnc, err := s.cipher.Encrypt(fmt.Sprintf("%.2f", amount))
	if err != nil {
		return nil, err
	}
	var commentsEnc []byte
	if comments != "" { // Comments are optional; NULL when absent
		commentsEnc, err = s.cipher.Encrypt(comments)
		if err != nil {
			return nil, err
		}
	}

	raise := models.PayRaise{
		EmpID:             empID,
		UserID:            userID,
		DateEncrypted:     dateEnc,
		AmountEncrypted:   amountEnc,
		CommentsEncrypted: commentsEnc,
	}

	// Referential check and insert run in one transaction so no partial
	// write is ever visible to concurrent readers.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Employee{}).Where("id = ?", empID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrReferentialIntegrity
		}
		if err := tx.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrReferentialIntegrity
		}
		return tx.Create(&raise).Error
	})
	if err != nil {
		return nil, err
	}
	return &raise, nil
}

// ListPayRaisesForUser - Retrieves decrypted pay raises submitted by one
// user, most recently created first.
func (s *Store) ListPayRaisesForUser(userID uint) ([]PayRaiseView, error) {
	var rows []payRaiseRow
	err := s.db.Table("EmpPayRaise").
		Select("EmpPayRaise.id, EmpPayRaise.user_id, Employees.name AS employee_name, "+
			"EmpPayRaise.payraise_date_encrypted AS date_encrypted, "+
			"EmpPayRaise.raiseamt_encrypted AS amount_encrypted, "+
			"EmpPayRaise.comments_encrypted AS comments_encrypted").
		Joins("JOIN Employees ON Employees.id = EmpPayRaise.emp_id").
		Where("EmpPayRaise.user_id = ?", userID).
		Order("EmpPayRaise.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return s.decryptRows(rows), nil
}

// ListAllPayRaises - Retrieves every pay raise with decrypted values,
// most recently created first.
func (s *Store) ListAllPayRaises() ([]PayRaiseView, error) {
	var rows []payRaiseRow
	err := s.db.Table("EmpPayRaise").
		Select("EmpPayRaise.id, EmpPayRaise.user_id, Employees.name AS employee_name, "+
			"EmpPayRaise.payraise_date_encrypted AS date_encrypted, "+
			"EmpPayRaise.raiseamt_encrypted AS amount_encrypted, "+
			"EmpPayRaise.comments_encrypted AS comments_encrypted").
		Joins("JOIN Employees ON Employees.id = EmpPayRaise.emp_id").
		Order("EmpPayRaise.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return s.decryptRows(rows), nil
}

// decryptRows - Opens the sensitive columns of each row. A failure on
// one row marks only that row as unreadable; the listing as a whole
// still succeeds.
func (s *Store) decryptRows(rows []payRaiseRow) []PayRaiseView {
	views := make([]PayRaiseView, 0, len(rows))
	for _, row := range rows {
		view := PayRaiseView{
			ID:           row.ID,
			UserID:       row.UserID,
			EmployeeName: row.EmployeeName,
		}
		view.Date = s.openField(row.DateEncrypted, &view)
		view.Amount = s.openField(row.AmountEncrypted, &view)
		if row.CommentsEncrypted != nil {
			view.Comments = s.openField(row.CommentsEncrypted, &view)
		}
		if view.Unreadable {
			log.Printf("payraise %d: decryption failed, returning placeholder", row.ID)
		} else {
			view.AmountDisplay = "$" + view.Amount
		}
		views = append(views, view)
	}
	return views
}

// openField - Decrypts one column, degrading to the placeholder and
// flagging the row on failure.
func (s *Store) openField(ciphertext []byte, view *PayRaiseView) string {
	plain, err := s.cipher.Decrypt(ciphertext)
	if err != nil {
		view.Unreadable = true
		return Unreadable
	}
	return plain
}
