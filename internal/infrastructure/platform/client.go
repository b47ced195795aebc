package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Biffle-Ltd/biffle-chat-web/domain"
)

// Client implements domain.PlatformClient against the platform REST API.
// It is the single owner of upstream request/response shapes; everything
// above it works with domain types.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new platform API client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// RequestOTP implements domain.PlatformClient
func (c *Client) RequestOTP(ctx context.Context, countryCode, phone string) error {
	body := map[string]string{
		"country_code": countryCode,
		"phone_number": phone,
	}
	return c.do(ctx, http.MethodPost, "/api/v1/auth/login/otp/request/", "", body, nil)
}

// LoginWithOTP implements domain.PlatformClient
func (c *Client) LoginWithOTP(ctx context.Context, countryCode, phone, otp string) (string, error) {
	body := map[string]string{
		"provider":     "phone",
		"country_code": countryCode,
		"phone_number": phone,
		"otp":          otp,
	}
	var resp struct {
		Token string `json:"token"`
		Data  struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login/", "", body, &resp); err != nil {
		return "", err
	}
	token := resp.Token
	if token == "" {
		token = resp.Data.Token
	}
	if token == "" {
		return "", domain.ErrLoginRejected
	}
	return token, nil
}

// UserDetails implements domain.PlatformClient
func (c *Client) UserDetails(ctx context.Context, token string) (*domain.UserProfile, error) {
	var resp struct {
		Data struct {
			UserID    json.Number `json:"user_id"`
			Name      string      `json:"name"`
			Phone     string      `json:"phone_number"`
			Email     string      `json:"email"`
			UserType  string      `json:"user_type"`
			IsNewUser bool        `json:"is_new_user"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/user_center/details/get-user-details/", token, nil, &resp); err != nil {
		return nil, err
	}
	return &domain.UserProfile{
		UserID:    resp.Data.UserID.String(),
		Name:      resp.Data.Name,
		Phone:     resp.Data.Phone,
		Email:     resp.Data.Email,
		Role:      domain.Role(resp.Data.UserType),
		IsNewUser: resp.Data.IsNewUser,
	}, nil
}

// WalletBalance implements domain.PlatformClient
func (c *Client) WalletBalance(ctx context.Context, token string) (int64, error) {
	var resp struct {
		Data struct {
			UserWallet struct {
				Balance int64 `json:"balance"`
			} `json:"user_wallet"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/user_center/details/get-wallet-balance/", token, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Data.UserWallet.Balance, nil
}

// CoinPacks implements domain.PlatformClient
func (c *Client) CoinPacks(ctx context.Context, token string) ([]domain.CoinPackage, error) {
	var resp struct {
		Success bool `json:"success"`
		Data    []struct {
			ID             int64 `json:"id"`
			CoinValue      int64 `json:"coin_value"`
			Amount         int64 `json:"amount"`
			OriginalAmount int64 `json:"original_amount"`
			Discount       int   `json:"discount"`
			IsTrialPack    bool  `json:"isTrialPack"`
			IsBonusPack    bool  `json:"isBonusPack"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/creator_center/details/get-coin-pack-details/", token, nil, &resp); err != nil {
		return nil, err
	}

	packs := make([]domain.CoinPackage, 0, len(resp.Data))
	for _, p := range resp.Data {
		original := p.OriginalAmount
		if original < p.Amount {
			original = p.Amount
		}
		packs = append(packs, domain.CoinPackage{
			ID:            p.ID,
			Coins:         p.CoinValue,
			Price:         p.Amount,
			OriginalPrice: original,
			Discount:      p.Discount,
			IsTrialPack:   p.IsTrialPack,
			IsBonusPack:   p.IsBonusPack,
		})
	}
	return packs, nil
}

// VerifyPayment implements domain.PlatformClient. The full provider
// parameter map is forwarded as-is; the server owns the crediting decision.
func (c *Client) VerifyPayment(ctx context.Context, token string, params map[string]string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/monetization/payu/verify/", token, params, nil)
}

// GenerateUploadURLs implements domain.PlatformClient
func (c *Client) GenerateUploadURLs(ctx context.Context, email, phone string, includeVideo bool) (*domain.UploadTargets, error) {
	body := map[string]any{
		"email":         email,
		"phone":         phone,
		"include_video": includeVideo,
	}
	var resp struct {
		Data domain.UploadTargets `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/creator_center/application/generate-url/", "", body, &resp); err != nil {
		var perr *domain.PlatformError
		if errors.As(err, &perr) && perr.Message == domain.ErrApplicantExists.Error() {
			return nil, domain.ErrApplicantExists
		}
		return nil, err
	}
	return &resp.Data, nil
}

// CreateApplication implements domain.PlatformClient
func (c *Client) CreateApplication(ctx context.Context, app *domain.CreatorApplication) error {
	return c.do(ctx, http.MethodPost, "/api/v1/creator_center/application/create/", "", app, nil)
}

// do performs one JSON request. Non-2xx responses become PlatformError with
// the server message when the body carries one.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPlatformUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		perr := &domain.PlatformError{StatusCode: resp.StatusCode}
		var errBody struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if data, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<16)); readErr == nil {
			if json.Unmarshal(data, &errBody) == nil {
				if errBody.Message != "" {
					perr.Message = errBody.Message
				} else if errBody.Error != "" {
					perr.Message = errBody.Error
				}
			}
		}
		return perr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
