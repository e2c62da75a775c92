package issue

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Sort keys accepted by the issue listing.
const (
	SortCreatedAt = "created_at"
	SortUpdatedAt = "updated_at"
	SortPriority  = "priority"
	SortStatus    = "status"
)

// ListQuery is the filter/sort/page specification for listing issues
// in a project. All filters are optional and combine with AND.
type ListQuery struct {
	Q          string    `form:"q"`
	Status     *Status   `form:"status" binding:"omitempty,oneof=open in_progress resolved closed"`
	Priority   *Priority `form:"priority" binding:"omitempty,oneof=low medium high critical"`
	AssigneeID *uint     `form:"assignee_id"`
	Sort       string    `form:"sort" binding:"omitempty,oneof=created_at updated_at priority status"`
	Page       int       `form:"page"`
	PageSize   int       `form:"page_size"`
}

// Normalize clamps pagination to valid bounds and fills defaults.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	if q.Sort == "" {
		q.Sort = SortCreatedAt
	}
}

// Offset is the number of rows to skip for the requested page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// Page is one page of issues plus the pre-pagination total.
type Page struct {
	Issues   []Issue `json:"issues"`
	Total    int64   `json:"total"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
}
