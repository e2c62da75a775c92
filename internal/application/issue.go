package application

import (
	"github.com/issuehub/issuehub/internal/domain/issue"
	"github.com/issuehub/issuehub/internal/events"
	"github.com/issuehub/issuehub/internal/repository"
)

type IssueService struct {
	Repos *repository.Repos
	Authz *Authorizer
	Hub   *events.Hub
}

func NewIssueService(repos *repository.Repos, authz *Authorizer, hub *events.Hub) *IssueService {
	return &IssueService{Repos: repos, Authz: authz, Hub: hub}
}

// ListIssues returns one page of the project's issues after membership
// is established. The total reflects the filters, not the page.
func (s *IssueService) ListIssues(actorID, projectID uint, q issue.ListQuery) (*issue.Page, error) {
	if _, err := s.Authz.RequireMember(projectID, actorID); err != nil {
		return nil, err
	}

	q.Normalize()
	issues, total, err := s.Repos.Issue.ListIssues(projectID, q)
	if err != nil {
		return nil, err
	}
	if issues == nil {
		issues = []issue.Issue{}
	}

	return &issue.Page{
		Issues:   issues,
		Total:    total,
		Page:     q.Page,
		PageSize: q.PageSize,
	}, nil
}

// CreateIssue files a new issue with the actor as reporter. Status is
// always open on creation regardless of client input.
func (s *IssueService) CreateIssue(actorID, projectID uint, input issue.CreateIssueDTO) (*issue.Issue, error) {
	if _, err := s.Authz.RequireMember(projectID, actorID); err != nil {
		return nil, err
	}

	if input.AssigneeID != nil {
		if _, err := s.Repos.Member.GetMember(projectID, *input.AssigneeID); err != nil {
			return nil, ErrInvalidAssignee
		}
	}

	i := &issue.Issue{
		ProjectID:  projectID,
		Title:      input.Title,
		Status:     issue.StatusOpen,
		Priority:   issue.PriorityMedium,
		ReporterID: actorID,
		AssigneeID: input.AssigneeID,
	}
	if input.Description != nil {
		i.Description = *input.Description
	}
	if input.Priority != "" {
		i.Priority = input.Priority
	}

	if err := s.Repos.Issue.CreateIssue(i); err != nil {
		return nil, err
	}

	s.Hub.Publish(events.Event{Type: events.IssueCreated, ProjectID: projectID, Payload: i})
	return i, nil
}

// GetIssue returns the issue if the actor belongs to its project.
func (s *IssueService) GetIssue(actorID, issueID uint) (*issue.Issue, error) {
	i, err := s.Repos.Issue.GetIssueByID(issueID)
	if err != nil {
		return nil, ErrIssueNotFound
	}

	if _, err := s.Authz.RequireMember(i.ProjectID, actorID); err != nil {
		return nil, err
	}

	return &i, nil
}

// UpdateIssue applies a partial update. Every present field is checked
// against the permission table first; one disallowed field rejects the
// whole payload before anything is written.
func (s *IssueService) UpdateIssue(actorID, issueID uint, input issue.UpdateIssueDTO) (*issue.Issue, error) {
	i, err := s.Repos.Issue.GetIssueByID(issueID)
	if err != nil {
		return nil, ErrIssueNotFound
	}

	m, err := s.Authz.RequireMember(i.ProjectID, actorID)
	if err != nil {
		return nil, err
	}

	isReporter := i.ReporterID == actorID
	if err := s.Authz.AuthorizeIssueUpdate(m, isReporter, input.Fields()); err != nil {
		return nil, err
	}

	// Reassignment is validated against current membership, same as at
	// creation time.
	if input.AssigneeID != nil {
		if _, err := s.Repos.Member.GetMember(i.ProjectID, *input.AssigneeID); err != nil {
			return nil, ErrInvalidAssignee
		}
	}

	input.Apply(&i)
	if err := s.Repos.Issue.SaveIssue(&i); err != nil {
		return nil, err
	}

	s.Hub.Publish(events.Event{Type: events.IssueUpdated, ProjectID: i.ProjectID, Payload: &i})
	return &i, nil
}

// DeleteIssue removes the issue and, by cascade, its comments and
// attachment rows. Maintainers only.
func (s *IssueService) DeleteIssue(actorID, issueID uint) error {
	i, err := s.Repos.Issue.GetIssueByID(issueID)
	if err != nil {
		return ErrIssueNotFound
	}

	if _, err := s.Authz.RequireMaintainer(i.ProjectID, actorID); err != nil {
		return err
	}

	if err := s.Repos.Issue.DeleteIssue(issueID); err != nil {
		return err
	}

	s.Hub.Publish(events.Event{Type: events.IssueDeleted, ProjectID: i.ProjectID, Payload: map[string]uint{"id": issueID}})
	return nil
}
