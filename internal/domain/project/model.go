package project

import (
	"time"

	"github.com/issuehub/issuehub/internal/domain/user"
)

// Role is a member's authority level within a single project.
type Role string

const (
	RoleMember     Role = "member"
	RoleMaintainer Role = "maintainer"
)

// Valid reports whether r is one of the two defined roles.
func (r Role) Valid() bool {
	return r == RoleMember || r == RoleMaintainer
}

// Project is a container for issues, like a repository in a forge.
// The key is a short unique code used to reference the project.
type Project struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Key         string    `gorm:"size:10;not null;uniqueIndex" json:"key"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Project) TableName() string {
	return "projects"
}

// Member links a user to a project with a role. A user holds at most
// one role per project (composite primary key).
type Member struct {
	ProjectID uint      `gorm:"primaryKey;autoIncrement:false" json:"project_id"`
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	Role      Role      `gorm:"size:20;not null;default:'member'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Project *Project   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	User    *user.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Member) TableName() string {
	return "project_members"
}

// MemberInfo is a member row joined with its user record, as returned
// in project detail responses.
type MemberInfo struct {
	User user.User `json:"user"`
	Role Role      `json:"role"`
}

// Detail is a project together with its full member list.
type Detail struct {
	Project
	Members []MemberInfo `json:"members"`
}
