package store

import (
	"github.com/google/uuid"

	"github.com/example/canasta/internal/models"
)

func (s *Store) CreateUser(u *models.User) error {
	return translate(s.db.Create(u).Error, "username must be unique")
}

func (s *Store) GetUser(id uuid.UUID) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		return nil, translate(err, "")
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, "username = ?", username).Error; err != nil {
		return nil, translate(err, "")
	}
	return &u, nil
}

func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, "email = ?", email).Error; err != nil {
		return nil, translate(err, "")
	}
	return &u, nil
}

// ListUsers returns every non-superuser account, most recently joined first.
func (s *Store) ListUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.Where("is_superuser = ?", false).
		Order("created_at desc").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) UpdateUser(u *models.User) error {
	return translate(s.db.Save(u).Error, "username must be unique")
}

func (s *Store) UsernameExists(username string) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// EmailExistsExcluding checks email uniqueness skipping one account, used
// when an admin edits that account's own email.
func (s *Store) EmailExistsExcluding(email string, exclude uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).
		Where("email = ? AND id != ?", email, exclude).Count(&count).Error
	return count > 0, err
}
