package issue

import (
	"time"

	"github.com/issuehub/issuehub/internal/domain/project"
	"github.com/issuehub/issuehub/internal/domain/user"
)

// Status is the lifecycle state of an issue. The usual progression is
// open -> in_progress -> resolved -> closed, but maintainers may set
// any value directly; there is no transition check.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// Rank is the position in declaration order, used for status sorting.
func (s Status) Rank() int {
	switch s {
	case StatusOpen:
		return 0
	case StatusInProgress:
		return 1
	case StatusResolved:
		return 2
	default:
		return 3
	}
}

// Priority is the urgency level of an issue.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Rank orders priorities most-urgent-first: critical=0 .. low=3.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	default:
		return 3
	}
}

// Issue is a bug, task, or feature request filed inside a project.
// ProjectID and ReporterID are immutable after creation.
type Issue struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID   uint      `gorm:"not null;index" json:"project_id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Status      Status    `gorm:"size:20;not null;default:'open';index" json:"status"`
	Priority    Priority  `gorm:"size:20;not null;default:'medium';index" json:"priority"`
	ReporterID  uint      `gorm:"not null;index" json:"reporter_id"`
	AssigneeID  *uint     `gorm:"index" json:"assignee_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Project  *project.Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	Reporter *user.User       `gorm:"foreignKey:ReporterID;constraint:OnDelete:CASCADE" json:"-"`
	Assignee *user.User       `gorm:"foreignKey:AssigneeID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Issue) TableName() string {
	return "issues"
}
