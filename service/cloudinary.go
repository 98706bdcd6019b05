package service

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const cloudinaryFolder = "portfolio"

// CloudinaryService uploads images through Cloudinary's signed REST upload
// endpoint. All images land in the portfolio/ folder.
type CloudinaryService struct {
	cloudName string
	apiKey    string
	apiSecret string
	BaseURL   string // overridable for tests
	HTTP      *http.Client
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials are required")
	}
	return &CloudinaryService{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		BaseURL:   "https://api.cloudinary.com",
		HTTP:      &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type cloudinaryUploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends the image bytes as a signed multipart request. The signature is
// the SHA-1 of the alphabetically-ordered params plus the API secret, per
// Cloudinary's auth scheme.
func (s *CloudinaryService) Upload(ctx context.Context, filename, contentType string, data []byte) (*UploadResult, error) {
	publicID := uuid.New().String()
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	toSign := fmt.Sprintf("folder=%s&public_id=%s&timestamp=%s%s", cloudinaryFolder, publicID, timestamp, s.apiSecret)
	digest := sha1.Sum([]byte(toSign))
	signature := hex.EncodeToString(digest[:])

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	fields := map[string]string{
		"api_key":   s.apiKey,
		"timestamp": timestamp,
		"folder":    cloudinaryFolder,
		"public_id": publicID,
		"signature": signature,
	}
	for k, v := range fields {
		if err := form.WriteField(k, v); err != nil {
			return nil, err
		}
	}
	if err := form.Close(); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1_1/%s/image/upload", s.BaseURL, s.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var out cloudinaryUploadResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("cloudinary: malformed response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || out.SecureURL == "" {
		return nil, fmt.Errorf("cloudinary: upload failed: %s", out.Error.Message)
	}
	return &UploadResult{URL: out.SecureURL, PublicID: out.PublicID}, nil
}
