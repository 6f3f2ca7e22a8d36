package services

import (
	"fmt"
	"mime/multipart"
	"sync"

	"github.com/samudra-tours/samudra-tours-api/utils"
)

// MockImageService is a mock implementation of ImageService for testing
type MockImageService struct {
	images  map[string]bool
	deleted []string
	mu      sync.Mutex
}

// NewMockImageService creates a new mock image service
func NewMockImageService() *MockImageService {
	return &MockImageService{
		images: make(map[string]bool),
	}
}

// SetAsMockForTesting sets this mock as the global image service instance for testing
func (m *MockImageService) SetAsMockForTesting() {
	SetImageService(m)
}

// UploadImage validates the file and records a fake key
func (m *MockImageService) UploadImage(fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	key := fmt.Sprintf("photos/mock_%s", fileHeader.Filename)
	m.mu.Lock()
	m.images[key] = true
	m.mu.Unlock()
	return key, nil
}

// GetImageURL returns a deterministic fake URL
func (m *MockImageService) GetImageURL(imageKey string) (string, error) {
	if imageKey == "" {
		return "", nil
	}
	return fmt.Sprintf("https://cdn.test/%s", imageKey), nil
}

// DeleteImage records the deletion
func (m *MockImageService) DeleteImage(imageKey string) error {
	if imageKey == "" {
		return nil
	}
	m.mu.Lock()
	delete(m.images, imageKey)
	m.deleted = append(m.deleted, imageKey)
	m.mu.Unlock()
	return nil
}

// DeletedKeys returns every key DeleteImage was called with
func (m *MockImageService) DeletedKeys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.deleted))
	copy(out, m.deleted)
	return out
}
