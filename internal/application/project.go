package application

import (
	"errors"

	"github.com/issuehub/issuehub/internal/domain/project"
	"github.com/issuehub/issuehub/internal/repository"
	"gorm.io/gorm"
)

type ProjectService struct {
	Repos *repository.Repos
	Authz *Authorizer
}

func NewProjectService(repos *repository.Repos, authz *Authorizer) *ProjectService {
	return &ProjectService{Repos: repos, Authz: authz}
}

// CreateProject creates the project and grants the creator the
// maintainer role in the same transaction.
func (s *ProjectService) CreateProject(actorID uint, input project.CreateProjectDTO) (*project.Project, error) {
	if _, err := s.Repos.Project.GetProjectByKey(input.Key); err == nil {
		return nil, ErrKeyTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p := &project.Project{
		Name: input.Name,
		Key:  input.Key,
	}
	if input.Description != nil {
		p.Description = *input.Description
	}

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Project.CreateProject(p); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrKeyTaken
			}
			return err
		}
		return tx.Member.CreateMember(&project.Member{
			ProjectID: p.ID,
			UserID:    actorID,
			Role:      project.RoleMaintainer,
		})
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}

// ListProjects returns the projects the actor belongs to.
func (s *ProjectService) ListProjects(actorID uint) ([]project.Project, error) {
	return s.Repos.Project.ListProjectsByUserID(actorID)
}

// GetProjectDetail returns the project with its member list. Only
// members may see it.
func (s *ProjectService) GetProjectDetail(actorID, projectID uint) (*project.Detail, error) {
	p, err := s.Repos.Project.GetProjectByID(projectID)
	if err != nil {
		return nil, ErrProjectNotFound
	}

	if _, err := s.Authz.RequireMember(projectID, actorID); err != nil {
		return nil, err
	}

	members, err := s.Repos.Member.ListMembersByProject(projectID)
	if err != nil {
		return nil, err
	}

	return &project.Detail{Project: p, Members: members}, nil
}

// AddMember adds a user (looked up by email) to the project with the
// given role. Maintainers only.
func (s *ProjectService) AddMember(actorID, projectID uint, input project.AddMemberDTO) (*project.MemberInfo, error) {
	if _, err := s.Repos.Project.GetProjectByID(projectID); err != nil {
		return nil, ErrProjectNotFound
	}

	if _, err := s.Authz.RequireMaintainer(projectID, actorID); err != nil {
		return nil, err
	}

	u, err := s.Repos.User.GetUserByEmail(input.Email)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if _, err := s.Repos.Member.GetMember(projectID, u.ID); err == nil {
		return nil, ErrAlreadyMember
	}

	m := &project.Member{
		ProjectID: projectID,
		UserID:    u.ID,
		Role:      input.Role,
	}
	if err := s.Repos.Member.CreateMember(m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyMember
		}
		return nil, err
	}

	return &project.MemberInfo{User: u, Role: m.Role}, nil
}
