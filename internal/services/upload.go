package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var (
	ErrNotPDF       = errors.New("resume must be a .pdf file")
	ErrFileTooLarge = errors.New("resume file is too large")
)

type UploadService interface {
	// ReadResume loads an uploaded resume into memory. Nothing is written to disk.
	ReadResume(file *multipart.FileHeader) ([]byte, error)
}

type uploadService struct {
	maxFileSize int64
}

func NewUploadService(maxFileSize int64) UploadService {
	return &uploadService{maxFileSize: maxFileSize}
}

func (s *uploadService) ReadResume(file *multipart.FileHeader) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		return nil, fmt.Errorf("%w: got %q", ErrNotPDF, ext)
	}

	if file.Size > s.maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes, max %d", ErrFileTooLarge, file.Size, s.maxFileSize)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Read one byte past the limit so a lying Size header is still caught.
	data, err := io.ReadAll(io.LimitReader(src, s.maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if int64(len(data)) > s.maxFileSize {
		return nil, fmt.Errorf("%w: max %d bytes", ErrFileTooLarge, s.maxFileSize)
	}

	return data, nil
}
