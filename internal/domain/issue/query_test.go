package issue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		in           ListQuery
		wantPage     int
		wantPageSize int
		wantSort     string
	}{
		{"defaults", ListQuery{}, 1, DefaultPageSize, SortCreatedAt},
		{"negative page", ListQuery{Page: -3}, 1, DefaultPageSize, SortCreatedAt},
		{"zero page size", ListQuery{Page: 2, PageSize: 0}, 2, DefaultPageSize, SortCreatedAt},
		{"oversized page size", ListQuery{PageSize: 500}, 1, MaxPageSize, SortCreatedAt},
		{"max page size kept", ListQuery{PageSize: MaxPageSize}, 1, MaxPageSize, SortCreatedAt},
		{"explicit sort kept", ListQuery{Sort: SortPriority}, 1, DefaultPageSize, SortPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.in
			q.Normalize()
			assert.Equal(t, tt.wantPage, q.Page)
			assert.Equal(t, tt.wantPageSize, q.PageSize)
			assert.Equal(t, tt.wantSort, q.Sort)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, ListQuery{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 20, ListQuery{Page: 2, PageSize: 20}.Offset())
	assert.Equal(t, 190, ListQuery{Page: 20, PageSize: 10}.Offset())
}

func TestUpdateDTOFields(t *testing.T) {
	title := "t"
	st := StatusClosed

	assert.Empty(t, UpdateIssueDTO{}.Fields())
	assert.Equal(t, []Field{FieldTitle}, UpdateIssueDTO{Title: &title}.Fields())
	assert.Equal(t, []Field{FieldStatus}, UpdateIssueDTO{Status: &st}.Fields())

	// An explicit null assignee counts as a present field.
	assert.Equal(t, []Field{FieldAssignee}, UpdateIssueDTO{AssigneeSet: true}.Fields())

	id := uint(3)
	assert.Equal(t, []Field{FieldTitle, FieldAssignee}, UpdateIssueDTO{Title: &title, AssigneeID: &id}.Fields())
}

func TestUpdateDTOApply(t *testing.T) {
	id := uint(3)
	i := Issue{Title: "old", Status: StatusOpen, Priority: PriorityLow, AssigneeID: &id}

	title := "new"
	pr := PriorityCritical
	UpdateIssueDTO{Title: &title, Priority: &pr}.Apply(&i)
	assert.Equal(t, "new", i.Title)
	assert.Equal(t, PriorityCritical, i.Priority)
	assert.Equal(t, StatusOpen, i.Status)
	assert.Equal(t, uint(3), *i.AssigneeID)

	// Explicit null clears the assignee; absence would not.
	UpdateIssueDTO{AssigneeSet: true}.Apply(&i)
	assert.Nil(t, i.AssigneeID)
}

func TestEnumRanks(t *testing.T) {
	assert.True(t, PriorityCritical.Rank() < PriorityHigh.Rank())
	assert.True(t, PriorityHigh.Rank() < PriorityMedium.Rank())
	assert.True(t, PriorityMedium.Rank() < PriorityLow.Rank())

	assert.True(t, StatusOpen.Rank() < StatusInProgress.Rank())
	assert.True(t, StatusInProgress.Rank() < StatusResolved.Rank())
	assert.True(t, StatusResolved.Rank() < StatusClosed.Rank())
}

func TestEnumValidation(t *testing.T) {
	assert.True(t, StatusInProgress.Valid())
	assert.False(t, Status("reopened").Valid())
	assert.True(t, PriorityCritical.Valid())
	assert.False(t, Priority("urgent").Valid())
}
