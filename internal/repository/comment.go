package repository

import (
	"github.com/issuehub/issuehub/internal/domain/comment"
	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(c *comment.Comment) error
	ListCommentsByIssue(issueID uint) ([]comment.Comment, error)
	WithTx(tx *gorm.DB) CommentRepo
}

type DBCommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *DBCommentRepo {
	return &DBCommentRepo{db: db}
}

func (r *DBCommentRepo) CreateComment(c *comment.Comment) error {
	return r.db.Create(c).Error
}

// ListCommentsByIssue returns comments oldest first, like a conversation.
func (r *DBCommentRepo) ListCommentsByIssue(issueID uint) ([]comment.Comment, error) {
	var comments []comment.Comment
	err := r.db.
		Where("issue_id = ?", issueID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *DBCommentRepo) WithTx(tx *gorm.DB) CommentRepo {
	if tx == nil {
		return r
	}
	return &DBCommentRepo{db: tx}
}
