package repository

import (
	"github.com/issuehub/issuehub/internal/domain/project"
	"gorm.io/gorm"
)

type MemberRepo interface {
	CreateMember(m *project.Member) error
	GetMember(projectID, userID uint) (project.Member, error)
	ListMembersByProject(projectID uint) ([]project.MemberInfo, error)
	WithTx(tx *gorm.DB) MemberRepo
}

type DBMemberRepo struct {
	db *gorm.DB
}

func NewMemberRepo(db *gorm.DB) *DBMemberRepo {
	return &DBMemberRepo{db: db}
}

func (r *DBMemberRepo) CreateMember(m *project.Member) error {
	return r.db.Create(m).Error
}

func (r *DBMemberRepo) GetMember(projectID, userID uint) (project.Member, error) {
	var m project.Member
	err := r.db.First(&m, "project_id = ? AND user_id = ?", projectID, userID).Error
	return m, err
}

func (r *DBMemberRepo) ListMembersByProject(projectID uint) ([]project.MemberInfo, error) {
	var members []project.Member
	err := r.db.
		Preload("User").
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}

	infos := make([]project.MemberInfo, 0, len(members))
	for _, m := range members {
		info := project.MemberInfo{Role: m.Role}
		if m.User != nil {
			info.User = *m.User
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func (r *DBMemberRepo) WithTx(tx *gorm.DB) MemberRepo {
	if tx == nil {
		return r
	}
	return &DBMemberRepo{db: tx}
}
