package project

type CreateProjectDTO struct {
	Name        string  `json:"name" binding:"required,min=1,max=200" example:"Backend API"`
	Key         string  `json:"key" binding:"required,min=2,max=10" example:"API"`
	Description *string `json:"description,omitempty" example:"REST API for IssueHub"`
}

type AddMemberDTO struct {
	Email string `json:"email" binding:"required,email" example:"bob@example.com"`
	Role  Role   `json:"role" binding:"required,oneof=member maintainer" example:"member"`
}
