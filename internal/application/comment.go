package application

import (
	"github.com/issuehub/issuehub/internal/domain/comment"
	"github.com/issuehub/issuehub/internal/events"
	"github.com/issuehub/issuehub/internal/repository"
)

type CommentService struct {
	Repos *repository.Repos
	Authz *Authorizer
	Hub   *events.Hub
}

func NewCommentService(repos *repository.Repos, authz *Authorizer, hub *events.Hub) *CommentService {
	return &CommentService{Repos: repos, Authz: authz, Hub: hub}
}

// ListComments returns the issue's comments oldest first, for members
// of the issue's project.
func (s *CommentService) ListComments(actorID, issueID uint) ([]comment.Comment, error) {
	i, err := s.Repos.Issue.GetIssueByID(issueID)
	if err != nil {
		return nil, ErrIssueNotFound
	}

	if _, err := s.Authz.RequireMember(i.ProjectID, actorID); err != nil {
		return nil, err
	}

	comments, err := s.Repos.Comment.ListCommentsByIssue(issueID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []comment.Comment{}
	}
	return comments, nil
}

// CreateComment adds a comment with the actor as author.
func (s *CommentService) CreateComment(actorID, issueID uint, input comment.CreateCommentDTO) (*comment.Comment, error) {
	i, err := s.Repos.Issue.GetIssueByID(issueID)
	if err != nil {
		return nil, ErrIssueNotFound
	}

	if _, err := s.Authz.RequireMember(i.ProjectID, actorID); err != nil {
		return nil, err
	}

	c := &comment.Comment{
		IssueID:  issueID,
		AuthorID: actorID,
		Body:     input.Body,
	}
	if err := s.Repos.Comment.CreateComment(c); err != nil {
		return nil, err
	}

	s.Hub.Publish(events.Event{Type: events.CommentCreated, ProjectID: i.ProjectID, Payload: c})
	return c, nil
}
