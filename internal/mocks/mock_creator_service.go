package mocks

import (
	"context"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
)

// MockCreatorService implements domain.CreatorService interface for testing
type MockCreatorService struct {
	GenerateUploadURLsFunc func(ctx context.Context, email, phone string, includeVideo bool) (*domain.UploadTargets, error)
	SubmitApplicationFunc  func(ctx context.Context, app *domain.CreatorApplication) error
}

// NewMockCreatorService creates a new MockCreatorService with default behaviors
func NewMockCreatorService() *MockCreatorService {
	return &MockCreatorService{}
}

// GenerateUploadURLs requests presigned upload destinations for creator assets
func (m *MockCreatorService) GenerateUploadURLs(ctx context.Context, email, phone string, includeVideo bool) (*domain.UploadTargets, error) {
	if m.GenerateUploadURLsFunc != nil {
		return m.GenerateUploadURLsFunc(ctx, email, phone, includeVideo)
	}
	targets := &domain.UploadTargets{
		Images: []domain.UploadTarget{
			{Key: "img_1", URL: "https://uploads.example.com/img_1"},
			{Key: "img_2", URL: "https://uploads.example.com/img_2"},
			{Key: "img_3", URL: "https://uploads.example.com/img_3"},
		},
	}
	if includeVideo {
		targets.Video = &domain.UploadTarget{Key: "vid_1", URL: "https://uploads.example.com/vid_1"}
	}
	return targets, nil
}

// SubmitApplication submits a creator application
func (m *MockCreatorService) SubmitApplication(ctx context.Context, app *domain.CreatorApplication) error {
	if m.SubmitApplicationFunc != nil {
		return m.SubmitApplicationFunc(ctx, app)
	}
	return nil
}

// Ensure MockCreatorService implements the interface
var _ domain.CreatorService = (*MockCreatorService)(nil)
