package repository

import (
	"github.com/issuehub/issuehub/internal/domain/attachment"
	"gorm.io/gorm"
)

type AttachmentRepo interface {
	CreateAttachment(a *attachment.Attachment) error
	GetAttachmentByID(id uint) (attachment.Attachment, error)
	ListAttachmentsByIssue(issueID uint) ([]attachment.Attachment, error)
	DeleteAttachment(id uint) error
	WithTx(tx *gorm.DB) AttachmentRepo
}

type DBAttachmentRepo struct {
	db *gorm.DB
}

func NewAttachmentRepo(db *gorm.DB) *DBAttachmentRepo {
	return &DBAttachmentRepo{db: db}
}

func (r *DBAttachmentRepo) CreateAttachment(a *attachment.Attachment) error {
	return r.db.Create(a).Error
}

func (r *DBAttachmentRepo) GetAttachmentByID(id uint) (attachment.Attachment, error) {
	var a attachment.Attachment
	err := r.db.First(&a, id).Error
	return a, err
}

func (r *DBAttachmentRepo) ListAttachmentsByIssue(issueID uint) ([]attachment.Attachment, error) {
	var attachments []attachment.Attachment
	err := r.db.
		Where("issue_id = ?", issueID).
		Order("created_at ASC").
		Find(&attachments).Error
	return attachments, err
}

func (r *DBAttachmentRepo) DeleteAttachment(id uint) error {
	return r.db.Delete(&attachment.Attachment{}, id).Error
}

func (r *DBAttachmentRepo) WithTx(tx *gorm.DB) AttachmentRepo {
	if tx == nil {
		return r
	}
	return &DBAttachmentRepo{db: tx}
}
