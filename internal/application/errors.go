package application

import "errors"

// Error kinds surfaced by the services. Handlers map each kind to a
// stable HTTP status so clients can branch without parsing messages.
var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("incorrect email or password")

	ErrUserNotFound       = errors.New("user not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrIssueNotFound      = errors.New("issue not found")
	ErrAttachmentNotFound = errors.New("attachment not found")

	ErrNotAMember       = errors.New("you are not a member of this project")
	ErrInsufficientRole = errors.New("only project maintainers can perform this action")

	ErrEmailTaken    = errors.New("email already registered")
	ErrKeyTaken      = errors.New("project key already exists")
	ErrAlreadyMember = errors.New("user is already a member of this project")

	ErrInvalidAssignee = errors.New("assignee must be a project member")
	ErrValidation      = errors.New("invalid input")
)
