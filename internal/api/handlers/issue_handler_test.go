package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/issuehub/issuehub/internal/domain/issue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func updateContext(t *testing.T, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("PATCH", "/api/issues/1", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestBindIssueUpdate_AbsentAssigneeKey(t *testing.T) {
	c := updateContext(t, `{"title": "renamed"}`)

	input, err := bindIssueUpdate(c)
	require.NoError(t, err)
	assert.Equal(t, "renamed", *input.Title)
	assert.Nil(t, input.AssigneeID)
	assert.False(t, input.AssigneeSet)
	assert.Equal(t, []issue.Field{issue.FieldTitle}, input.Fields())
}

func TestBindIssueUpdate_NullAssigneeMeansUnassign(t *testing.T) {
	c := updateContext(t, `{"assignee_id": null}`)

	input, err := bindIssueUpdate(c)
	require.NoError(t, err)
	assert.Nil(t, input.AssigneeID)
	assert.True(t, input.AssigneeSet)
	assert.Equal(t, []issue.Field{issue.FieldAssignee}, input.Fields())
}

func TestBindIssueUpdate_AssigneeValue(t *testing.T) {
	c := updateContext(t, `{"assignee_id": 7, "priority": "critical"}`)

	input, err := bindIssueUpdate(c)
	require.NoError(t, err)
	assert.Equal(t, uint(7), *input.AssigneeID)
	assert.True(t, input.AssigneeSet)
	assert.Equal(t, issue.PriorityCritical, *input.Priority)
}

func TestBindIssueUpdate_RejectsBadEnum(t *testing.T) {
	c := updateContext(t, `{"status": "reopened"}`)

	_, err := bindIssueUpdate(c)
	assert.Error(t, err)
}

func TestBindIssueUpdate_RejectsMalformedJSON(t *testing.T) {
	c := updateContext(t, `{"title": `)

	_, err := bindIssueUpdate(c)
	assert.Error(t, err)
}

func TestBindIssueUpdate_RejectsEmptyTitle(t *testing.T) {
	c := updateContext(t, `{"title": ""}`)

	_, err := bindIssueUpdate(c)
	assert.Error(t, err)
}
