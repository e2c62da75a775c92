package application

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/issuehub/issuehub/internal/domain/attachment"
	"github.com/issuehub/issuehub/internal/domain/project"
	"github.com/issuehub/issuehub/internal/repository"
	"github.com/issuehub/issuehub/internal/storage"
)

// DownloadLinkExpiry bounds how long a presigned attachment URL stays
// valid.
const DownloadLinkExpiry = 15 * time.Minute

type AttachmentService struct {
	Repos *repository.Repos
	Authz *Authorizer
	Store storage.ObjectStore
}

func NewAttachmentService(repos *repository.Repos, authz *Authorizer, store storage.ObjectStore) *AttachmentService {
	return &AttachmentService{Repos: repos, Authz: authz, Store: store}
}

// Upload stores the file bytes in object storage and records the
// metadata row. Members of the issue's project only.
func (s *AttachmentService) Upload(ctx context.Context, actorID, issueID uint, fileName, contentType string, size int64, r io.Reader) (*attachment.Attachment, error) {
	i, err := s.Repos.Issue.GetIssueByID(issueID)
	if err != nil {
		return nil, ErrIssueNotFound
	}

	if _, err := s.Authz.RequireMember(i.ProjectID, actorID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("issues/%d/%s%s", issueID, uuid.NewString(), path.Ext(fileName))
	if err := s.Store.Put(ctx, key, r, size, contentType); err != nil {
		return nil, fmt.Errorf("store attachment: %w", err)
	}

	a := &attachment.Attachment{
		IssueID:     issueID,
		UploaderID:  actorID,
		FileName:    fileName,
		ContentType: contentType,
		Size:        size,
		ObjectKey:   key,
	}
	if err := s.Repos.Attachment.CreateAttachment(a); err != nil {
		// Metadata write failed: don't leave an orphan object behind.
		_ = s.Store.Remove(ctx, key)
		return nil, err
	}

	return a, nil
}

// List returns the issue's attachment metadata for project members.
func (s *AttachmentService) List(actorID, issueID uint) ([]attachment.Attachment, error) {
	i, err := s.Repos.Issue.GetIssueByID(issueID)
	if err != nil {
		return nil, ErrIssueNotFound
	}

	if _, err := s.Authz.RequireMember(i.ProjectID, actorID); err != nil {
		return nil, err
	}

	attachments, err := s.Repos.Attachment.ListAttachmentsByIssue(issueID)
	if err != nil {
		return nil, err
	}
	if attachments == nil {
		attachments = []attachment.Attachment{}
	}
	return attachments, nil
}

// DownloadURL returns a short-lived presigned URL for the attachment.
func (s *AttachmentService) DownloadURL(ctx context.Context, actorID, attachmentID uint) (string, error) {
	a, _, err := s.requireAttachmentMember(actorID, attachmentID)
	if err != nil {
		return "", err
	}

	return s.Store.PresignedGet(ctx, a.ObjectKey, a.FileName, DownloadLinkExpiry)
}

// Delete removes the attachment. Allowed for the uploader and for
// maintainers of the issue's project.
func (s *AttachmentService) Delete(ctx context.Context, actorID, attachmentID uint) error {
	a, m, err := s.requireAttachmentMember(actorID, attachmentID)
	if err != nil {
		return err
	}

	if a.UploaderID != actorID && m.Role != project.RoleMaintainer {
		return ErrInsufficientRole
	}

	if err := s.Repos.Attachment.DeleteAttachment(a.ID); err != nil {
		return err
	}
	// Object removal is best effort; the metadata row is authoritative.
	_ = s.Store.Remove(ctx, a.ObjectKey)
	return nil
}

func (s *AttachmentService) requireAttachmentMember(actorID, attachmentID uint) (attachment.Attachment, project.Member, error) {
	a, err := s.Repos.Attachment.GetAttachmentByID(attachmentID)
	if err != nil {
		return attachment.Attachment{}, project.Member{}, ErrAttachmentNotFound
	}

	i, err := s.Repos.Issue.GetIssueByID(a.IssueID)
	if err != nil {
		return attachment.Attachment{}, project.Member{}, ErrIssueNotFound
	}

	m, err := s.Authz.RequireMember(i.ProjectID, actorID)
	if err != nil {
		return attachment.Attachment{}, project.Member{}, err
	}

	return a, m, nil
}
