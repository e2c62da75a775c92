package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User       UserRepo
	Project    ProjectRepo
	Member     MemberRepo
	Issue      IssueRepo
	Comment    CommentRepo
	Attachment AttachmentRepo

	db *gorm.DB
}

func New(db *gorm.DB) *Repos {
	return &Repos{
		User:       NewUserRepo(db),
		Project:    NewProjectRepo(db),
		Member:     NewMemberRepo(db),
		Issue:      NewIssueRepo(db),
		Comment:    NewCommentRepo(db),
		Attachment: NewAttachmentRepo(db),
		db:         db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:       r.User.WithTx(tx),
		Project:    r.Project.WithTx(tx),
		Member:     r.Member.WithTx(tx),
		Issue:      r.Issue.WithTx(tx),
		Comment:    r.Comment.WithTx(tx),
		Attachment: r.Attachment.WithTx(tx),
		db:         tx,
	}
}

// ExecTx runs fn inside a transaction, with every repo bound to it.
// With no connection bound (mocked repos), fn runs inline.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
