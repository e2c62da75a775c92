package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/issuehub/issuehub/internal/domain/attachment"
	"github.com/issuehub/issuehub/internal/domain/issue"
	"github.com/issuehub/issuehub/internal/domain/project"
	"github.com/issuehub/issuehub/internal/repository"
	"github.com/issuehub/issuehub/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// fakeStore records object-store calls so tests can assert cleanup
// behavior without a MinIO server.
type fakeStore struct {
	putErr  error
	puts    []string
	removes []string
}

func (f *fakeStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.puts = append(f.puts, key)
	return nil
}

func (f *fakeStore) PresignedGet(ctx context.Context, key, fileName string, expiry time.Duration) (string, error) {
	return "https://minio.local/" + key, nil
}

func (f *fakeStore) Remove(ctx context.Context, key string) error {
	f.removes = append(f.removes, key)
	return nil
}

type attachmentServiceMocks struct {
	issue      *mock.MockIssueRepo
	member     *mock.MockMemberRepo
	attachment *mock.MockAttachmentRepo
	store      *fakeStore
}

func setupAttachmentServiceMocks(t *testing.T) (*AttachmentService, attachmentServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mocks := attachmentServiceMocks{
		issue:      mock.NewMockIssueRepo(ctrl),
		member:     mock.NewMockMemberRepo(ctrl),
		attachment: mock.NewMockAttachmentRepo(ctrl),
		store:      &fakeStore{},
	}
	repos := &repository.Repos{
		Issue:      mocks.issue,
		Member:     mocks.member,
		Attachment: mocks.attachment,
	}
	svc := NewAttachmentService(repos, NewAuthorizer(mocks.member), mocks.store)
	return svc, mocks
}

// --------------------- Upload ---------------------
func TestUploadAttachment_Success(t *testing.T) {
	svc, mocks := setupAttachmentServiceMocks(t)

	mocks.issue.EXPECT().GetIssueByID(uint(5)).Return(issue.Issue{ID: 5, ProjectID: 10}, nil)
	mocks.member.EXPECT().GetMember(uint(10), uint(2)).Return(memberOf(10, 2, project.RoleMember), nil)
	mocks.attachment.EXPECT().CreateAttachment(gomock.Any()).DoAndReturn(func(a *attachment.Attachment) error {
		assert.Equal(t, uint(5), a.IssueID)
		assert.Equal(t, uint(2), a.UploaderID)
		assert.Equal(t, "trace.log", a.FileName)
		assert.True(t, strings.HasPrefix(a.ObjectKey, "issues/5/"))
		assert.True(t, strings.HasSuffix(a.ObjectKey, ".log"))
		a.ID = 1
		return nil
	})

	a, err := svc.Upload(context.Background(), 2, 5, "trace.log", "text/plain", 42, strings.NewReader("boom"))
	assert.NoError(t, err)
	assert.Equal(t, uint(1), a.ID)
	assert.Len(t, mocks.store.puts, 1)
	assert.Empty(t, mocks.store.removes)
}

func TestUploadAttachment_MetadataFailureRemovesObject(t *testing.T) {
	svc, mocks := setupAttachmentServiceMocks(t)

	mocks.issue.EXPECT().GetIssueByID(uint(5)).Return(issue.Issue{ID: 5, ProjectID: 10}, nil)
	mocks.member.EXPECT().GetMember(uint(10), uint(2)).Return(memberOf(10, 2, project.RoleMember), nil)
	mocks.attachment.EXPECT().CreateAttachment(gomock.Any()).Return(errors.New("insert failed"))

	a, err := svc.Upload(context.Background(), 2, 5, "trace.log", "text/plain", 42, strings.NewReader("boom"))
	assert.Nil(t, a)
	assert.Error(t, err)
	assert.Len(t, mocks.store.removes, 1)
	assert.Equal(t, mocks.store.puts[0], mocks.store.removes[0])
}

func TestUploadAttachment_NotAMember(t *testing.T) {
	svc, mocks := setupAttachmentServiceMocks(t)

	mocks.issue.EXPECT().GetIssueByID(uint(5)).Return(issue.Issue{ID: 5, ProjectID: 10}, nil)
	mocks.member.EXPECT().GetMember(uint(10), uint(99)).Return(project.Member{}, gorm.ErrRecordNotFound)

	a, err := svc.Upload(context.Background(), 99, 5, "trace.log", "text/plain", 42, strings.NewReader("boom"))
	assert.Nil(t, a)
	assert.Equal(t, ErrNotAMember, err)
	assert.Empty(t, mocks.store.puts)
}

// --------------------- DownloadURL ---------------------
func TestDownloadURL_Success(t *testing.T) {
	svc, mocks := setupAttachmentServiceMocks(t)

	mocks.attachment.EXPECT().GetAttachmentByID(uint(1)).Return(attachment.Attachment{
		ID: 1, IssueID: 5, UploaderID: 2, ObjectKey: "issues/5/abc.log", FileName: "trace.log",
	}, nil)
	mocks.issue.EXPECT().GetIssueByID(uint(5)).Return(issue.Issue{ID: 5, ProjectID: 10}, nil)
	mocks.member.EXPECT().GetMember(uint(10), uint(3)).Return(memberOf(10, 3, project.RoleMember), nil)

	url, err := svc.DownloadURL(context.Background(), 3, 1)
	assert.NoError(t, err)
	assert.Equal(t, "https://minio.local/issues/5/abc.log", url)
}

func TestDownloadURL_AttachmentNotFound(t *testing.T) {
	svc, mocks := setupAttachmentServiceMocks(t)

	mocks.attachment.EXPECT().GetAttachmentByID(uint(404)).Return(attachment.Attachment{}, gorm.ErrRecordNotFound)

	url, err := svc.DownloadURL(context.Background(), 1, 404)
	assert.Empty(t, url)
	assert.Equal(t, ErrAttachmentNotFound, err)
}

// --------------------- Delete ---------------------
func TestDeleteAttachment_UploaderAllowed(t *testing.T) {
	svc, mocks := setupAttachmentServiceMocks(t)

	mocks.attachment.EXPECT().GetAttachmentByID(uint(1)).Return(attachment.Attachment{
		ID: 1, IssueID: 5, UploaderID: 2, ObjectKey: "issues/5/abc.log",
	}, nil)
	mocks.issue.EXPECT().GetIssueByID(uint(5)).Return(issue.Issue{ID: 5, ProjectID: 10}, nil)
	mocks.member.EXPECT().GetMember(uint(10), uint(2)).Return(memberOf(10, 2, project.RoleMember), nil)
	mocks.attachment.EXPECT().DeleteAttachment(uint(1)).Return(nil)

	err := svc.Delete(context.Background(), 2, 1)
	assert.NoError(t, err)
	assert.Equal(t, []string{"issues/5/abc.log"}, mocks.store.removes)
}

func TestDeleteAttachment_MaintainerAllowed(t *testing.T) {
	svc, mocks := setupAttachmentServiceMocks(t)

	mocks.attachment.EXPECT().GetAttachmentByID(uint(1)).Return(attachment.Attachment{
		ID: 1, IssueID: 5, UploaderID: 2, ObjectKey: "issues/5/abc.log",
	}, nil)
	mocks.issue.EXPECT().GetIssueByID(uint(5)).Return(issue.Issue{ID: 5, ProjectID: 10}, nil)
	mocks.member.EXPECT().GetMember(uint(10), uint(1)).Return(memberOf(10, 1, project.RoleMaintainer), nil)
	mocks.attachment.EXPECT().DeleteAttachment(uint(1)).Return(nil)

	err := svc.Delete(context.Background(), 1, 1)
	assert.NoError(t, err)
}

func TestDeleteAttachment_OtherMemberForbidden(t *testing.T) {
	svc, mocks := setupAttachmentServiceMocks(t)

	mocks.attachment.EXPECT().GetAttachmentByID(uint(1)).Return(attachment.Attachment{
		ID: 1, IssueID: 5, UploaderID: 2, ObjectKey: "issues/5/abc.log",
	}, nil)
	mocks.issue.EXPECT().GetIssueByID(uint(5)).Return(issue.Issue{ID: 5, ProjectID: 10}, nil)
	mocks.member.EXPECT().GetMember(uint(10), uint(3)).Return(memberOf(10, 3, project.RoleMember), nil)

	err := svc.Delete(context.Background(), 3, 1)
	assert.Equal(t, ErrInsufficientRole, err)
	assert.Empty(t, mocks.store.removes)
}
