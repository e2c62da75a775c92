package issue

// Field names an updatable issue attribute. The update DTO reports
// which fields are present so the permission check can walk exactly
// the supplied set.
type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldStatus      Field = "status"
	FieldPriority    Field = "priority"
	FieldAssignee    Field = "assignee_id"
)

type CreateIssueDTO struct {
	Title       string   `json:"title" binding:"required,min=1,max=200" example:"Login button not responding"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=5000"`
	Priority    Priority `json:"priority" binding:"omitempty,oneof=low medium high critical" example:"high"`
	AssigneeID  *uint    `json:"assignee_id,omitempty" example:"2"`
}

type UpdateIssueDTO struct {
	Title       *string   `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Description *string   `json:"description,omitempty" binding:"omitempty,max=5000"`
	Status      *Status   `json:"status,omitempty" binding:"omitempty,oneof=open in_progress resolved closed"`
	Priority    *Priority `json:"priority,omitempty" binding:"omitempty,oneof=low medium high critical"`
	AssigneeID  *uint     `json:"assignee_id,omitempty"`
	// AssigneeSet distinguishes "assignee_id": null (unassign) from an
	// absent key. Handlers populate it from the raw payload.
	AssigneeSet bool `json:"-"`
}

// Fields lists the fields present in the payload, in declaration order.
func (d UpdateIssueDTO) Fields() []Field {
	var fields []Field
	if d.Title != nil {
		fields = append(fields, FieldTitle)
	}
	if d.Description != nil {
		fields = append(fields, FieldDescription)
	}
	if d.Status != nil {
		fields = append(fields, FieldStatus)
	}
	if d.Priority != nil {
		fields = append(fields, FieldPriority)
	}
	if d.AssigneeID != nil || d.AssigneeSet {
		fields = append(fields, FieldAssignee)
	}
	return fields
}

// Apply copies the present fields onto the issue. Permission checks
// must already have passed; absent fields are left untouched.
func (d UpdateIssueDTO) Apply(i *Issue) {
	if d.Title != nil {
		i.Title = *d.Title
	}
	if d.Description != nil {
		i.Description = *d.Description
	}
	if d.Status != nil {
		i.Status = *d.Status
	}
	if d.Priority != nil {
		i.Priority = *d.Priority
	}
	if d.AssigneeID != nil || d.AssigneeSet {
		i.AssigneeID = d.AssigneeID
	}
}
