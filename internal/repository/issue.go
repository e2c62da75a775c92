package repository

import (
	"github.com/issuehub/issuehub/internal/domain/issue"
	"gorm.io/gorm"
)

type IssueRepo interface {
	CreateIssue(i *issue.Issue) error
	GetIssueByID(id uint) (issue.Issue, error)
	SaveIssue(i *issue.Issue) error
	DeleteIssue(id uint) error
	ListIssues(projectID uint, q issue.ListQuery) ([]issue.Issue, int64, error)
	WithTx(tx *gorm.DB) IssueRepo
}

type DBIssueRepo struct {
	db *gorm.DB
}

func NewIssueRepo(db *gorm.DB) *DBIssueRepo {
	return &DBIssueRepo{db: db}
}

func (r *DBIssueRepo) CreateIssue(i *issue.Issue) error {
	return r.db.Create(i).Error
}

func (r *DBIssueRepo) GetIssueByID(id uint) (issue.Issue, error) {
	var i issue.Issue
	err := r.db.First(&i, id).Error
	return i, err
}

func (r *DBIssueRepo) SaveIssue(i *issue.Issue) error {
	return r.db.Save(i).Error
}

func (r *DBIssueRepo) DeleteIssue(id uint) error {
	return r.db.Delete(&issue.Issue{}, id).Error
}

// Enum rank expressions so priority/status sort by declaration order
// rather than alphabetically.
const (
	priorityRankExpr = `CASE priority
		WHEN 'critical' THEN 0
		WHEN 'high' THEN 1
		WHEN 'medium' THEN 2
		ELSE 3 END ASC, id DESC`
	statusRankExpr = `CASE status
		WHEN 'open' THEN 0
		WHEN 'in_progress' THEN 1
		WHEN 'resolved' THEN 2
		ELSE 3 END ASC, id DESC`
)

// ListIssues applies the filters, sort and pagination and returns one page
// plus the total count of matching rows before pagination.
func (r *DBIssueRepo) ListIssues(projectID uint, q issue.ListQuery) ([]issue.Issue, int64, error) {
	query := r.db.Model(&issue.Issue{}).Where("project_id = ?", projectID)

	if q.Q != "" {
		pattern := "%" + q.Q + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if q.Status != nil {
		query = query.Where("status = ?", *q.Status)
	}
	if q.Priority != nil {
		query = query.Where("priority = ?", *q.Priority)
	}
	if q.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *q.AssigneeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch q.Sort {
	case issue.SortUpdatedAt:
		query = query.Order("updated_at DESC")
	case issue.SortPriority:
		query = query.Order(priorityRankExpr)
	case issue.SortStatus:
		query = query.Order(statusRankExpr)
	default:
		query = query.Order("created_at DESC")
	}

	var issues []issue.Issue
	err := query.Offset(q.Offset()).Limit(q.PageSize).Find(&issues).Error
	return issues, total, err
}

func (r *DBIssueRepo) WithTx(tx *gorm.DB) IssueRepo {
	if tx == nil {
		return r
	}
	return &DBIssueRepo{db: tx}
}
