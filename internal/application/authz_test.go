package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/issuehub/issuehub/internal/domain/issue"
	"github.com/issuehub/issuehub/internal/domain/project"
	"github.com/issuehub/issuehub/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupAuthorizer(t *testing.T) (*Authorizer, *mock.MockMemberRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockMember := mock.NewMockMemberRepo(ctrl)
	return NewAuthorizer(mockMember), mockMember
}

func TestRequireMember(t *testing.T) {
	authz, mockMember := setupAuthorizer(t)

	mockMember.EXPECT().GetMember(uint(10), uint(1)).Return(memberOf(10, 1, project.RoleMember), nil)
	m, err := authz.RequireMember(10, 1)
	assert.NoError(t, err)
	assert.Equal(t, project.RoleMember, m.Role)

	mockMember.EXPECT().GetMember(uint(10), uint(99)).Return(project.Member{}, gorm.ErrRecordNotFound)
	_, err = authz.RequireMember(10, 99)
	assert.Equal(t, ErrNotAMember, err)
}

func TestRequireMaintainer(t *testing.T) {
	authz, mockMember := setupAuthorizer(t)

	mockMember.EXPECT().GetMember(uint(10), uint(1)).Return(memberOf(10, 1, project.RoleMaintainer), nil)
	m, err := authz.RequireMaintainer(10, 1)
	assert.NoError(t, err)
	assert.Equal(t, project.RoleMaintainer, m.Role)

	mockMember.EXPECT().GetMember(uint(10), uint(2)).Return(memberOf(10, 2, project.RoleMember), nil)
	_, err = authz.RequireMaintainer(10, 2)
	assert.Equal(t, ErrInsufficientRole, err)

	mockMember.EXPECT().GetMember(uint(10), uint(99)).Return(project.Member{}, gorm.ErrRecordNotFound)
	_, err = authz.RequireMaintainer(10, 99)
	assert.Equal(t, ErrNotAMember, err)
}

func TestAuthorizeIssueUpdate(t *testing.T) {
	authz, _ := setupAuthorizer(t)

	maintainer := memberOf(10, 1, project.RoleMaintainer)
	member := memberOf(10, 2, project.RoleMember)

	tests := []struct {
		name       string
		m          project.Member
		isReporter bool
		fields     []issue.Field
		wantErr    error
	}{
		{"maintainer edits everything", maintainer, false, []issue.Field{issue.FieldTitle, issue.FieldDescription, issue.FieldStatus, issue.FieldPriority, issue.FieldAssignee}, nil},
		{"reporter edits title and description", member, true, []issue.Field{issue.FieldTitle, issue.FieldDescription}, nil},
		{"reporter cannot change status", member, true, []issue.Field{issue.FieldStatus}, ErrInsufficientRole},
		{"reporter cannot change priority", member, true, []issue.Field{issue.FieldPriority}, ErrInsufficientRole},
		{"reporter cannot reassign", member, true, []issue.Field{issue.FieldAssignee}, ErrInsufficientRole},
		{"member cannot edit someone else's title", member, false, []issue.Field{issue.FieldTitle}, ErrInsufficientRole},
		{"one bad field rejects the rest", member, true, []issue.Field{issue.FieldTitle, issue.FieldStatus}, ErrInsufficientRole},
		{"empty payload is fine", member, false, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authz.AuthorizeIssueUpdate(tt.m, tt.isReporter, tt.fields)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}
