package services

import (
	"context"
	"strings"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
)

// CreatorServiceImpl implements domain.CreatorService. Form validation
// happens before any network call; the actual asset uploads go straight
// from the browser to storage via the presigned targets, never through
// this process.
type CreatorServiceImpl struct {
	platform domain.PlatformClient
}

// NewCreatorService creates a new creator onboarding service
func NewCreatorService(platform domain.PlatformClient) domain.CreatorService {
	return &CreatorServiceImpl{platform: platform}
}

// GenerateUploadURLs implements domain.CreatorService. A duplicate
// applicant is reported as domain.ErrApplicantExists carrying the
// platform's verbatim message.
func (s *CreatorServiceImpl) GenerateUploadURLs(ctx context.Context, email, phone string, includeVideo bool) (*domain.UploadTargets, error) {
	if !strings.Contains(email, "@") || phone == "" {
		return nil, domain.ErrApplicationIncomplete
	}
	return s.platform.GenerateUploadURLs(ctx, email, phone, includeVideo)
}

// SubmitApplication implements domain.CreatorService
func (s *CreatorServiceImpl) SubmitApplication(ctx context.Context, app *domain.CreatorApplication) error {
	if err := validateApplication(app); err != nil {
		return err
	}
	return s.platform.CreateApplication(ctx, app)
}

// validateApplication mirrors the registration form requirements: names,
// 10-digit phone, email, gender, adult confirmation, agency, country code
// and exactly three profile images. The intro video stays optional.
func validateApplication(app *domain.CreatorApplication) error {
	switch {
	case app == nil,
		strings.TrimSpace(app.FirstName) == "",
		strings.TrimSpace(app.LastName) == "",
		!allDigits(app.Phone) || len(app.Phone) != 10,
		!strings.Contains(app.Email, "@"),
		app.Gender == "",
		!app.IsAbove18,
		app.Agency == "",
		app.CountryCode == "",
		len(app.ImageKeys) != 3:
		return domain.ErrApplicationIncomplete
	}
	return nil
}
