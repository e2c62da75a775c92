package application

import (
	"github.com/issuehub/issuehub/internal/events"
	"github.com/issuehub/issuehub/internal/repository"
	"github.com/issuehub/issuehub/internal/storage"
)

type Services struct {
	User       *UserService
	Project    *ProjectService
	Issue      *IssueService
	Comment    *CommentService
	Attachment *AttachmentService
	Authz      *Authorizer
	Hub        *events.Hub
}

func New(repos *repository.Repos, hub *events.Hub, store storage.ObjectStore) *Services {
	authz := NewAuthorizer(repos.Member)
	return &Services{
		User:       NewUserService(repos),
		Project:    NewProjectService(repos, authz),
		Issue:      NewIssueService(repos, authz, hub),
		Comment:    NewCommentService(repos, authz, hub),
		Attachment: NewAttachmentService(repos, authz, store),
		Authz:      authz,
		Hub:        hub,
	}
}
