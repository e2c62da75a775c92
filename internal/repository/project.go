package repository

import (
	"github.com/issuehub/issuehub/internal/domain/project"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	CreateProject(p *project.Project) error
	GetProjectByID(id uint) (project.Project, error)
	GetProjectByKey(key string) (project.Project, error)
	ListProjectsByUserID(userID uint) ([]project.Project, error)
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{db: db}
}

func (r *DBProjectRepo) CreateProject(p *project.Project) error {
	return r.db.Create(p).Error
}

func (r *DBProjectRepo) GetProjectByID(id uint) (project.Project, error) {
	var p project.Project
	err := r.db.First(&p, id).Error
	return p, err
}

func (r *DBProjectRepo) GetProjectByKey(key string) (project.Project, error) {
	var p project.Project
	err := r.db.First(&p, "key = ?", key).Error
	return p, err
}

func (r *DBProjectRepo) ListProjectsByUserID(userID uint) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.
		Joins("JOIN project_members pm ON pm.project_id = projects.id").
		Where("pm.user_id = ?", userID).
		Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{db: tx}
}
