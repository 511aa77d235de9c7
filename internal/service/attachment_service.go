package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"gstdesk/internal/config"
	"gstdesk/internal/domain"
	"gstdesk/internal/port"
)

// UploadAttachmentInput is the DTO for uploading a document attachment.
type UploadAttachmentInput struct {
	DocumentID   uuid.UUID
	UploadedBy   uuid.UUID
	OriginalName string
	Size         int64
	Content      io.ReadSeeker
}

// AttachmentService manages document attachments (signed copies,
// goods-receipt photos) stored in object storage.
type AttachmentService interface {
	Upload(ctx context.Context, tenantID uuid.UUID, input UploadAttachmentInput) (*domain.FileMeta, error)
	GetDownloadURL(ctx context.Context, tenantID, fileID uuid.UUID) (string, error)
	ListByDocument(ctx context.Context, tenantID, documentID uuid.UUID) ([]domain.FileMeta, error)
	Delete(ctx context.Context, tenantID, fileID uuid.UUID) error
}

type attachmentService struct {
	fileRepo port.FileMetaRepository
	docRepo  port.DocumentRepository
	storage  port.ObjectStorage
	cfg      config.S3Config
}

// NewAttachmentService creates a new AttachmentService implementation.
func NewAttachmentService(
	fileRepo port.FileMetaRepository,
	docRepo port.DocumentRepository,
	storage port.ObjectStorage,
	cfg config.S3Config,
) AttachmentService {
	return &attachmentService{
		fileRepo: fileRepo,
		docRepo:  docRepo,
		storage:  storage,
		cfg:      cfg,
	}
}

func (s *attachmentService) Upload(ctx context.Context, tenantID uuid.UUID, input UploadAttachmentInput) (*domain.FileMeta, error) {
	if _, err := s.docRepo.GetByID(ctx, tenantID, input.DocumentID); err != nil {
		return nil, err
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(input.OriginalName)), ".")
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	maxSize := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Size > maxSize {
		return nil, domain.ErrFileTooLarge
	}

	// Sniff the real content type from the first bytes rather than
	// trusting the client-supplied header.
	head := make([]byte, 512)
	n, err := input.Content.Read(head)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("attachmentService.Upload read head: %w", err)
	}
	contentType := http.DetectContentType(head[:n])
	if _, ok := domain.AllowedContentTypes[contentType]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}
	if _, err := input.Content.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("attachmentService.Upload seek: %w", err)
	}

	fileName := fmt.Sprintf("%s.%s", uuid.New().String(), ext)
	s3Key := fmt.Sprintf("attachments/%s/%s/%s", tenantID, input.DocumentID, fileName)

	meta := &domain.FileMeta{
		TenantID:     tenantID,
		DocumentID:   input.DocumentID,
		UploadedBy:   input.UploadedBy,
		FileName:     fileName,
		OriginalName: input.OriginalName,
		FileType:     fileType,
		FileSize:     input.Size,
		S3Bucket:     s.cfg.Bucket,
		S3Key:        s3Key,
		ContentType:  contentType,
		Status:       domain.FileStatusPending,
	}
	if err := s.fileRepo.Create(ctx, meta); err != nil {
		return nil, err
	}

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         s3Key,
		Body:        input.Content,
		ContentType: contentType,
		Size:        input.Size,
	})
	if err != nil {
		if updErr := s.fileRepo.UpdateStatus(ctx, tenantID, meta.ID, domain.FileStatusFailed); updErr != nil {
			log.Printf("attachmentService.Upload: marking %s failed: %v", meta.ID, updErr)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	if err := s.fileRepo.UpdateStatus(ctx, tenantID, meta.ID, domain.FileStatusUploaded); err != nil {
		return nil, err
	}
	meta.Status = domain.FileStatusUploaded
	return meta, nil
}

func (s *attachmentService) GetDownloadURL(ctx context.Context, tenantID, fileID uuid.UUID) (string, error) {
	meta, err := s.fileRepo.GetByID(ctx, tenantID, fileID)
	if err != nil {
		return "", err
	}
	if meta.Status != domain.FileStatusUploaded {
		return "", domain.ErrNotFound
	}
	return s.storage.GetPresignedURL(ctx, meta.S3Bucket, meta.S3Key, s.cfg.PresignExpiry)
}

func (s *attachmentService) ListByDocument(ctx context.Context, tenantID, documentID uuid.UUID) ([]domain.FileMeta, error) {
	return s.fileRepo.ListByDocument(ctx, tenantID, documentID)
}

func (s *attachmentService) Delete(ctx context.Context, tenantID, fileID uuid.UUID) error {
	meta, err := s.fileRepo.GetByID(ctx, tenantID, fileID)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, meta.S3Bucket, meta.S3Key); err != nil {
		log.Printf("attachmentService.Delete: removing s3://%s/%s: %v", meta.S3Bucket, meta.S3Key, err)
	}
	return s.fileRepo.Delete(ctx, tenantID, fileID)
}
