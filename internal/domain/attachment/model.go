package attachment

import (
	"time"

	"github.com/issuehub/issuehub/internal/domain/issue"
	"github.com/issuehub/issuehub/internal/domain/user"
)

// Attachment is a file uploaded to an issue. The bytes live in object
// storage under ObjectKey; this row holds the metadata.
type Attachment struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	IssueID     uint      `gorm:"not null;index" json:"issue_id"`
	UploaderID  uint      `gorm:"not null" json:"uploader_id"`
	FileName    string    `gorm:"size:255;not null" json:"file_name"`
	ContentType string    `gorm:"size:100" json:"content_type"`
	Size        int64     `gorm:"not null" json:"size"`
	ObjectKey   string    `gorm:"size:512;not null" json:"-"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	Issue    *issue.Issue `gorm:"foreignKey:IssueID;constraint:OnDelete:CASCADE" json:"-"`
	Uploader *user.User   `gorm:"foreignKey:UploaderID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Attachment) TableName() string {
	return "attachments"
}
