// store.go - Record store for users and employees
// The store is the only code that touches the database; handlers go
// through it so the field cipher is applied consistently.

package store // Declares the package name

import ( // Import required packages
	"errors" // Sentinel errors

	"go-payraise-backend/crypto" // Field cipher
	"go-payraise-backend/models" // Table models

	"gorm.io/gorm" // GORM ORM
)

// ErrNotFound - The requested row does not exist.
var ErrNotFound = errors.New("record not found")

// ErrReferentialIntegrity - A pay raise referenced a user or employee
// that does not exist. Surfaced to callers as a generic failure.
var ErrReferentialIntegrity = errors.New("referenced employee or user does not exist")

// Store persists users, employees and pay raises, transparently
// encrypting sensitive pay-raise columns on write and decrypting them
// on read. Construct once in main with the shared cipher instance.
type Store struct {
	db     *gorm.DB
	cipher *crypto.FieldCipher
}

// New - Creates a record store over the given database handle and cipher.
func New(db *gorm.DB, cipher *crypto.FieldCipher) *Store {
	return &Store{db: db, cipher: cipher}
}

// FindUserByUsername - Fetches a single user by login name.
func (s *Store) FindUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindUserByID - Fetches a single user by primary key.
func (s *Store) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser - Inserts a new login account. The password hash must
// already be computed by the caller.
func (s *Store) CreateUser(username, passwordHash, fullName string, securityLevel int, empID *uint) (*models.User, error) {
	user := models.User{
		Username:      username,
		PasswordHash:  passwordHash,
		FullName:      fullName,
		SecurityLevel: securityLevel,
		EmpID:         empID,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// LinkUserToEmployee - Points an existing account at an employee record.
// Used by seeding to repair the relationship on reruns.
func (s *Store) LinkUserToEmployee(userID, empID uint) error {
	return s.db.Model(&models.User{}).Where("id = ?", userID).Update("emp_id", empID).Error
}

// ListEmployees - Retrieves all employees ordered by name.
func (s *Store) ListEmployees() ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.db.Order("name").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// FindEmployeeByID - Retrieves a single employee by primary key.
func (s *Store) FindEmployeeByID(id uint) (*models.Employee, error) {
	var emp models.Employee
	if err := s.db.First(&emp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &emp, nil
}

// CreateEmployee - Inserts a new employee record.
func (s *Store) CreateEmployee(name, email, department string, securityLevel int) (*models.Employee, error) {
	if securityLevel == 0 {
		securityLevel = models.LevelStaff // Least privileged by default
	}
	emp := models.Employee{
		Name:          name,
		Email:         email,
		Department:    department,
		SecurityLevel: securityLevel,
	}
	if err := s.db.Create(&emp).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}
