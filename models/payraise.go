// payraise.go - Defines the PayRaise model for the database
// Sensitive columns (date, amount, comments) hold AEAD ciphertext only;
// plaintext exists transiently in memory while a request is handled.

package models // Declares the package name

type PayRaise struct { // PayRaise struct represents one pay-raise record
	ID            uint   `gorm:"primaryKey;column:id"`                                           // Unique record ID (primary key)
	EmpID         uint   `gorm:"column:emp_id;not null"`                                         // Foreign key to Employees
	UserID        uint   `gorm:"column:user_id;not null"`                                        // Foreign key to Users (submitter)
	Employee      Employee `gorm:"foreignKey:EmpID;references:ID;constraint:OnUpdate:CASCADE"`   // Foreign key constraint
	User          User     `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE"`  // Foreign key constraint
	DateEncrypted     []byte `gorm:"column:payraise_date_encrypted;not null"` // Encrypted raise date (YYYY-MM-DD)
	AmountEncrypted   []byte `gorm:"column:raiseamt_encrypted;not null"`      // Encrypted raise amount (two decimals)
	CommentsEncrypted []byte `gorm:"column:comments_encrypted"`               // Encrypted optional comment (NULL when absent)
}

// TableName pins the legacy table name used by the existing database.
func (PayRaise) TableName() string {
	return "EmpPayRaise"
}
