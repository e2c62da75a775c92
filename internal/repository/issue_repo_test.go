package repository

import (
	"testing"
	"time"

	"github.com/issuehub/issuehub/internal/domain/comment"
	"github.com/issuehub/issuehub/internal/domain/issue"
	"github.com/issuehub/issuehub/internal/domain/project"
	"github.com/issuehub/issuehub/internal/domain/user"
	"github.com/issuehub/issuehub/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func ptrStatus(s issue.Status) *issue.Status       { return &s }
func ptrPriority(p issue.Priority) *issue.Priority { return &p }

// seedIssueFixtures creates two users, one project, and a spread of
// issues with distinct timestamps so ordering is deterministic.
func seedIssueFixtures(t *testing.T, db *gorm.DB) (repos *Repos, projectID uint, alice, bob user.User) {
	t.Helper()
	repos = New(db)

	alice = user.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "x"}
	bob = user.User{Name: "Bob", Email: "bob@example.com", PasswordHash: "x"}
	require.NoError(t, repos.User.CreateUser(&alice))
	require.NoError(t, repos.User.CreateUser(&bob))

	p := project.Project{Name: "Backend API", Key: "API"}
	require.NoError(t, repos.Project.CreateProject(&p))
	projectID = p.ID

	require.NoError(t, repos.Member.CreateMember(&project.Member{ProjectID: p.ID, UserID: alice.ID, Role: project.RoleMaintainer}))
	require.NoError(t, repos.Member.CreateMember(&project.Member{ProjectID: p.ID, UserID: bob.ID, Role: project.RoleMember}))

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []issue.Issue{
		{Title: "Login endpoint returns 500 error", Description: "stack trace attached", Status: issue.StatusOpen, Priority: issue.PriorityHigh, ReporterID: bob.ID, AssigneeID: &alice.ID},
		{Title: "Add pagination to issues list", Status: issue.StatusInProgress, Priority: issue.PriorityMedium, ReporterID: alice.ID, AssigneeID: &alice.ID},
		{Title: "JWT tokens expire too quickly", Status: issue.StatusResolved, Priority: issue.PriorityLow, ReporterID: bob.ID},
		{Title: "Database connection pool exhausted", Description: "happens under load", Status: issue.StatusOpen, Priority: issue.PriorityCritical, ReporterID: alice.ID},
		{Title: "Flaky login test", Status: issue.StatusClosed, Priority: issue.PriorityHigh, ReporterID: alice.ID, AssigneeID: &bob.ID},
	}
	for n := range rows {
		rows[n].ProjectID = p.ID
		rows[n].CreatedAt = base.Add(time.Duration(n) * time.Hour)
		rows[n].UpdatedAt = rows[n].CreatedAt
		require.NoError(t, repos.Issue.CreateIssue(&rows[n]))
	}
	return repos, projectID, alice, bob
}

func TestIssueRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("requires a postgres instance")
	}

	db, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	repos, projectID, alice, bob := seedIssueFixtures(t, db)

	t.Run("default sort newest first", func(t *testing.T) {
		issues, total, err := repos.Issue.ListIssues(projectID, issue.ListQuery{Sort: issue.SortCreatedAt, Page: 1, PageSize: 20})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		require.Len(t, issues, 5)
		assert.Equal(t, "Flaky login test", issues[0].Title)
		assert.Equal(t, "Login endpoint returns 500 error", issues[4].Title)
	})

	t.Run("text search matches title and description", func(t *testing.T) {
		issues, total, err := repos.Issue.ListIssues(projectID, issue.ListQuery{Q: "login", Sort: issue.SortCreatedAt, Page: 1, PageSize: 20})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, issues, 2)

		issues, _, err = repos.Issue.ListIssues(projectID, issue.ListQuery{Q: "LOAD", Sort: issue.SortCreatedAt, Page: 1, PageSize: 20})
		require.NoError(t, err)
		require.Len(t, issues, 1)
		assert.Equal(t, "Database connection pool exhausted", issues[0].Title)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		issues, total, err := repos.Issue.ListIssues(projectID, issue.ListQuery{
			Status:   ptrStatus(issue.StatusOpen),
			Priority: ptrPriority(issue.PriorityCritical),
			Sort:     issue.SortCreatedAt, Page: 1, PageSize: 20,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, issues, 1)
		assert.Equal(t, "Database connection pool exhausted", issues[0].Title)
	})

	t.Run("assignee filter", func(t *testing.T) {
		issues, total, err := repos.Issue.ListIssues(projectID, issue.ListQuery{
			AssigneeID: &alice.ID,
			Sort:       issue.SortCreatedAt, Page: 1, PageSize: 20,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		for _, i := range issues {
			assert.Equal(t, alice.ID, *i.AssigneeID)
		}
	})

	t.Run("priority sort most urgent first", func(t *testing.T) {
		issues, _, err := repos.Issue.ListIssues(projectID, issue.ListQuery{Sort: issue.SortPriority, Page: 1, PageSize: 20})
		require.NoError(t, err)
		require.Len(t, issues, 5)
		assert.Equal(t, issue.PriorityCritical, issues[0].Priority)
		// Equal priorities break ties newest first.
		assert.Equal(t, issue.PriorityHigh, issues[1].Priority)
		assert.Equal(t, "Flaky login test", issues[1].Title)
		assert.Equal(t, issue.PriorityHigh, issues[2].Priority)
		assert.Equal(t, issue.PriorityLow, issues[4].Priority)
	})

	t.Run("status sort by lifecycle order", func(t *testing.T) {
		issues, _, err := repos.Issue.ListIssues(projectID, issue.ListQuery{Sort: issue.SortStatus, Page: 1, PageSize: 20})
		require.NoError(t, err)
		require.Len(t, issues, 5)
		assert.Equal(t, issue.StatusOpen, issues[0].Status)
		assert.Equal(t, issue.StatusOpen, issues[1].Status)
		assert.Equal(t, issue.StatusClosed, issues[4].Status)
	})

	t.Run("pagination keeps pre-page total", func(t *testing.T) {
		issues, total, err := repos.Issue.ListIssues(projectID, issue.ListQuery{Sort: issue.SortCreatedAt, Page: 2, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		require.Len(t, issues, 2)
		assert.Equal(t, "JWT tokens expire too quickly", issues[0].Title)

		issues, total, err = repos.Issue.ListIssues(projectID, issue.ListQuery{Sort: issue.SortCreatedAt, Page: 9, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		assert.Empty(t, issues)
	})

	t.Run("scoped to the project", func(t *testing.T) {
		other := project.Project{Name: "Frontend App", Key: "FE"}
		require.NoError(t, repos.Project.CreateProject(&other))

		issues, total, err := repos.Issue.ListIssues(other.ID, issue.ListQuery{Sort: issue.SortCreatedAt, Page: 1, PageSize: 20})
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, issues)
	})

	t.Run("duplicate keys translate", func(t *testing.T) {
		err := repos.User.CreateUser(&user.User{Name: "Alice2", Email: "alice@example.com", PasswordHash: "x"})
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

		err = repos.Member.CreateMember(&project.Member{ProjectID: projectID, UserID: bob.ID, Role: project.RoleMember})
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})

	t.Run("deleting an issue cascades to comments", func(t *testing.T) {
		i := issue.Issue{ProjectID: projectID, Title: "Doomed", Status: issue.StatusOpen, Priority: issue.PriorityLow, ReporterID: alice.ID}
		require.NoError(t, repos.Issue.CreateIssue(&i))
		c := comment.Comment{IssueID: i.ID, AuthorID: bob.ID, Body: "so long"}
		require.NoError(t, repos.Comment.CreateComment(&c))

		require.NoError(t, repos.Issue.DeleteIssue(i.ID))

		comments, err := repos.Comment.ListCommentsByIssue(i.ID)
		require.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("member list preloads users oldest first", func(t *testing.T) {
		infos, err := repos.Member.ListMembersByProject(projectID)
		require.NoError(t, err)
		require.Len(t, infos, 2)
		assert.Equal(t, "alice@example.com", infos[0].User.Email)
		assert.Equal(t, project.RoleMaintainer, infos[0].Role)
		assert.Equal(t, "bob@example.com", infos[1].User.Email)
	})
}
