package comment

import (
	"time"

	"github.com/issuehub/issuehub/internal/domain/issue"
	"github.com/issuehub/issuehub/internal/domain/user"
)

// Comment is a discussion entry on an issue. IssueID and AuthorID are
// immutable after creation.
type Comment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	IssueID   uint      `gorm:"not null;index" json:"issue_id"`
	AuthorID  uint      `gorm:"not null" json:"author_id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Issue  *issue.Issue `gorm:"foreignKey:IssueID;constraint:OnDelete:CASCADE" json:"-"`
	Author *user.User   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}
