package repository

import (
	"github.com/issuehub/issuehub/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	CreateUser(u *user.User) error
	GetUserByID(id uint) (user.User, error)
	GetUserByEmail(email string) (user.User, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return u, err
}

func (r *DBUserRepo) GetUserByEmail(email string) (user.User, error) {
	var u user.User
	err := r.db.First(&u, "email = ?", email).Error
	return u, err
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{db: tx}
}
