package application

import (
	"github.com/issuehub/issuehub/internal/domain/issue"
	"github.com/issuehub/issuehub/internal/domain/project"
	"github.com/issuehub/issuehub/internal/repository"
)

// Relation is the minimum relationship an actor must hold to a
// resource for an action to be permitted.
type Relation int

const (
	// RelationMember requires project membership of any role.
	RelationMember Relation = iota
	// RelationReporterOrMaintainer requires membership plus being the
	// issue's reporter, unless the actor is a maintainer.
	RelationReporterOrMaintainer
	// RelationMaintainer requires the maintainer role.
	RelationMaintainer
)

// issueFieldRules is the per-field permission table for issue updates.
// Kept as data rather than branching so it can be audited and tested
// in isolation.
var issueFieldRules = map[issue.Field]Relation{
	issue.FieldTitle:       RelationReporterOrMaintainer,
	issue.FieldDescription: RelationReporterOrMaintainer,
	issue.FieldStatus:      RelationMaintainer,
	issue.FieldPriority:    RelationMaintainer,
	issue.FieldAssignee:    RelationMaintainer,
}

// Authorizer resolves project membership and evaluates the permission
// table. Every check re-queries current state; nothing is cached.
type Authorizer struct {
	members repository.MemberRepo
}

func NewAuthorizer(members repository.MemberRepo) *Authorizer {
	return &Authorizer{members: members}
}

// RequireMember returns the actor's membership in the project, or
// ErrNotAMember.
func (a *Authorizer) RequireMember(projectID, userID uint) (project.Member, error) {
	m, err := a.members.GetMember(projectID, userID)
	if err != nil {
		return project.Member{}, ErrNotAMember
	}
	return m, nil
}

// RequireMaintainer returns the membership only if its role is
// maintainer. A missing membership is ErrNotAMember; a lesser role is
// ErrInsufficientRole.
func (a *Authorizer) RequireMaintainer(projectID, userID uint) (project.Member, error) {
	m, err := a.RequireMember(projectID, userID)
	if err != nil {
		return project.Member{}, err
	}
	if m.Role != project.RoleMaintainer {
		return project.Member{}, ErrInsufficientRole
	}
	return m, nil
}

// AuthorizeIssueUpdate checks every supplied field against the rule
// table. Any single disallowed field rejects the whole update, so the
// caller can apply all fields or none.
func (a *Authorizer) AuthorizeIssueUpdate(m project.Member, isReporter bool, fields []issue.Field) error {
	isMaintainer := m.Role == project.RoleMaintainer
	for _, f := range fields {
		relation, ok := issueFieldRules[f]
		if !ok {
			continue
		}
		switch relation {
		case RelationMember:
			// membership already established by the caller
		case RelationReporterOrMaintainer:
			if !isReporter && !isMaintainer {
				return ErrInsufficientRole
			}
		case RelationMaintainer:
			if !isMaintainer {
				return ErrInsufficientRole
			}
		}
	}
	return nil
}
