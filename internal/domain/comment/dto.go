package comment

type CreateCommentDTO struct {
	Body string `json:"body" binding:"required,min=1,max=5000" example:"I'm seeing the same thing on Chrome 120"`
}
