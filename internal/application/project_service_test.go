package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/issuehub/issuehub/internal/domain/project"
	"github.com/issuehub/issuehub/internal/domain/user"
	"github.com/issuehub/issuehub/internal/repository"
	"github.com/issuehub/issuehub/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type projectServiceMocks struct {
	project *mock.MockProjectRepo
	member  *mock.MockMemberRepo
	user    *mock.MockUserRepo
}

func setupProjectServiceMocks(t *testing.T) (*ProjectService, projectServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mocks := projectServiceMocks{
		project: mock.NewMockProjectRepo(ctrl),
		member:  mock.NewMockMemberRepo(ctrl),
		user:    mock.NewMockUserRepo(ctrl),
	}
	repos := &repository.Repos{
		Project: mocks.project,
		Member:  mocks.member,
		User:    mocks.user,
	}
	svc := NewProjectService(repos, NewAuthorizer(mocks.member))
	return svc, mocks
}

// --------------------- CreateProject ---------------------
func TestCreateProject_CreatorBecomesMaintainer(t *testing.T) {
	svc, mocks := setupProjectServiceMocks(t)

	mocks.project.EXPECT().GetProjectByKey("API").Return(project.Project{}, gorm.ErrRecordNotFound)
	mocks.project.EXPECT().CreateProject(gomock.Any()).DoAndReturn(func(p *project.Project) error {
		p.ID = 10
		return nil
	})
	mocks.member.EXPECT().CreateMember(gomock.Any()).DoAndReturn(func(m *project.Member) error {
		assert.Equal(t, uint(10), m.ProjectID)
		assert.Equal(t, uint(1), m.UserID)
		assert.Equal(t, project.RoleMaintainer, m.Role)
		return nil
	})

	p, err := svc.CreateProject(1, project.CreateProjectDTO{
		Name:        "Backend API",
		Key:         "API",
		Description: ptrString("REST API for IssueHub"),
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(10), p.ID)
	assert.Equal(t, "REST API for IssueHub", p.Description)
}

func TestCreateProject_KeyTaken(t *testing.T) {
	svc, mocks := setupProjectServiceMocks(t)

	mocks.project.EXPECT().GetProjectByKey("API").Return(project.Project{ID: 3, Key: "API"}, nil)

	p, err := svc.CreateProject(1, project.CreateProjectDTO{Name: "Backend API", Key: "API"})
	assert.Nil(t, p)
	assert.Equal(t, ErrKeyTaken, err)
}

func TestCreateProject_KeyTakenOnInsertRace(t *testing.T) {
	svc, mocks := setupProjectServiceMocks(t)

	mocks.project.EXPECT().GetProjectByKey("API").Return(project.Project{}, gorm.ErrRecordNotFound)
	mocks.project.EXPECT().CreateProject(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	p, err := svc.CreateProject(1, project.CreateProjectDTO{Name: "Backend API", Key: "API"})
	assert.Nil(t, p)
	assert.Equal(t, ErrKeyTaken, err)
}

// --------------------- GetProjectDetail ---------------------
func TestGetProjectDetail_Success(t *testing.T) {
	svc, mocks := setupProjectServiceMocks(t)

	mocks.project.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10, Key: "API"}, nil)
	mocks.member.EXPECT().GetMember(uint(10), uint(1)).Return(project.Member{ProjectID: 10, UserID: 1, Role: project.RoleMember}, nil)
	mocks.member.EXPECT().ListMembersByProject(uint(10)).Return([]project.MemberInfo{
		{User: user.User{ID: 1, Name: "Alice"}, Role: project.RoleMaintainer},
		{User: user.User{ID: 2, Name: "Bob"}, Role: project.RoleMember},
	}, nil)

	detail, err := svc.GetProjectDetail(1, 10)
	assert.NoError(t, err)
	assert.Equal(t, "API", detail.Key)
	assert.Len(t, detail.Members, 2)
	assert.Equal(t, project.RoleMaintainer, detail.Members[0].Role)
}

func TestGetProjectDetail_NotAMember(t *testing.T) {
	svc, mocks := setupProjectServiceMocks(t)

	mocks.project.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10}, nil)
	mocks.member.EXPECT().GetMember(uint(10), uint(99)).Return(project.Member{}, gorm.ErrRecordNotFound)

	detail, err := svc.GetProjectDetail(99, 10)
	assert.Nil(t, detail)
	assert.Equal(t, ErrNotAMember, err)
}

func TestGetProjectDetail_NotFound(t *testing.T) {
	svc, mocks := setupProjectServiceMocks(t)

	mocks.project.EXPECT().GetProjectByID(uint(404)).Return(project.Project{}, gorm.ErrRecordNotFound)

	detail, err := svc.GetProjectDetail(1, 404)
	assert.Nil(t, detail)
	assert.Equal(t, ErrProjectNotFound, err)
}

// --------------------- AddMember ---------------------
func TestAddMember_Success(t *testing.T) {
	svc, mocks := setupProjectServiceMocks(t)

	mocks.project.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10}, nil)
	mocks.member.EXPECT().GetMember(uint(10), uint(1)).Return(project.Member{ProjectID: 10, UserID: 1, Role: project.RoleMaintainer}, nil)
	mocks.user.EXPECT().GetUserByEmail("bob@example.com").Return(user.User{ID: 2, Email: "bob@example.com"}, nil)
	mocks.member.EXPECT().GetMember(uint(10), uint(2)).Return(project.Member{}, gorm.ErrRecordNotFound)
	mocks.member.EXPECT().CreateMember(gomock.Any()).DoAndReturn(func(m *project.Member) error {
		assert.Equal(t, project.RoleMember, m.Role)
		return nil
	})

	info, err := svc.AddMember(1, 10, project.AddMemberDTO{Email: "bob@example.com", Role: project.RoleMember})
	assert.NoError(t, err)
	assert.Equal(t, uint(2), info.User.ID)
	assert.Equal(t, project.RoleMember, info.Role)
}

func TestAddMember_RequiresMaintainer(t *testing.T) {
	svc, mocks := setupProjectServiceMocks(t)

	mocks.project.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10}, nil)
	mocks.member.EXPECT().GetMember(uint(10), uint(2)).Return(project.Member{ProjectID: 10, UserID: 2, Role: project.RoleMember}, nil)

	info, err := svc.AddMember(2, 10, project.AddMemberDTO{Email: "eve@example.com", Role: project.RoleMember})
	assert.Nil(t, info)
	assert.Equal(t, ErrInsufficientRole, err)
}

func TestAddMember_UserNotFound(t *testing.T) {
	svc, mocks := setupProjectServiceMocks(t)

	mocks.project.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10}, nil)
	mocks.member.EXPECT().GetMember(uint(10), uint(1)).Return(project.Member{ProjectID: 10, UserID: 1, Role: project.RoleMaintainer}, nil)
	mocks.user.EXPECT().GetUserByEmail("ghost@example.com").Return(user.User{}, gorm.ErrRecordNotFound)

	info, err := svc.AddMember(1, 10, project.AddMemberDTO{Email: "ghost@example.com", Role: project.RoleMember})
	assert.Nil(t, info)
	assert.Equal(t, ErrUserNotFound, err)
}

func TestAddMember_AlreadyMember(t *testing.T) {
	svc, mocks := setupProjectServiceMocks(t)

	mocks.project.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10}, nil)
	mocks.member.EXPECT().GetMember(uint(10), uint(1)).Return(project.Member{ProjectID: 10, UserID: 1, Role: project.RoleMaintainer}, nil)
	mocks.user.EXPECT().GetUserByEmail("bob@example.com").Return(user.User{ID: 2}, nil)
	mocks.member.EXPECT().GetMember(uint(10), uint(2)).Return(project.Member{ProjectID: 10, UserID: 2, Role: project.RoleMember}, nil)

	info, err := svc.AddMember(1, 10, project.AddMemberDTO{Email: "bob@example.com", Role: project.RoleMaintainer})
	assert.Nil(t, info)
	assert.Equal(t, ErrAlreadyMember, err)
}

func TestAddMember_MaintainerRoleRoundTrip(t *testing.T) {
	svc, mocks := setupProjectServiceMocks(t)

	mocks.project.EXPECT().GetProjectByID(uint(10)).Return(project.Project{ID: 10}, nil)
	mocks.member.EXPECT().GetMember(uint(10), uint(1)).Return(project.Member{ProjectID: 10, UserID: 1, Role: project.RoleMaintainer}, nil)
	mocks.user.EXPECT().GetUserByEmail("carol@example.com").Return(user.User{ID: 3}, nil)
	mocks.member.EXPECT().GetMember(uint(10), uint(3)).Return(project.Member{}, gorm.ErrRecordNotFound)
	mocks.member.EXPECT().CreateMember(gomock.Any()).Return(nil)

	info, err := svc.AddMember(1, 10, project.AddMemberDTO{Email: "carol@example.com", Role: project.RoleMaintainer})
	assert.NoError(t, err)
	assert.Equal(t, project.RoleMaintainer, info.Role)
}
