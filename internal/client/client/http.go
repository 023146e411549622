package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Nigam11/skillhub-front/internal/client/models"
	"github.com/Nigam11/skillhub-front/internal/logging"
)

const (
	defaultTimeout = 30 * time.Second
	maxBodySize    = 8 << 20
	maxMessageSize = 512
)

var ErrInvalidBaseURL = errors.New("invalid server base url")

// HTTPClient talks to the SkillHub REST API.
type HTTPClient struct {
	baseURL   *url.URL
	http      *http.Client
	transport *bearerTransport
	log       logging.Logger
}

var _ Client = (*HTTPClient)(nil)

type Option func(*HTTPClient)

func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) {
		if l != nil {
			c.log = l
			c.transport.log = l
		}
	}
}

// WithRoundTripper replaces the underlying transport the bearer layer
// delegates to.
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(c *HTTPClient) {
		if rt != nil {
			c.transport.next = rt
		}
	}
}

func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := ParseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	t := &bearerTransport{next: http.DefaultTransport, log: logging.Nop()}
	c := &HTTPClient{
		baseURL:   u,
		transport: t,
		http:      &http.Client{Transport: t, Timeout: defaultTimeout},
		log:       logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ParseBaseURL accepts an absolute http(s) URL without fragment.
func ParseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q: scheme must be http or https", ErrInvalidBaseURL, raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: %q: missing host", ErrInvalidBaseURL, raw)
	}
	if u.Fragment != "" {
		return nil, fmt.Errorf("%w: %q: fragment not allowed", ErrInvalidBaseURL, raw)
	}
	return u, nil
}

// Authenticate binds the client to a credential source. onUnauthorized may
// be nil.
func (c *HTTPClient) Authenticate(tokens TokenSource, onUnauthorized UnauthorizedFunc) {
	c.transport.bind(tokens, onUnauthorized)
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.doJSON(withoutCredential(ctx), http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Signup(ctx context.Context, req models.SignupRequest) error {
	return c.doJSON(withoutCredential(ctx), http.MethodPost, "/api/auth/signup", req, nil)
}

func (c *HTTPClient) RequestPasswordReset(ctx context.Context, email string) error {
	req := models.PasswordResetRequest{Email: email}
	return c.doJSON(withoutCredential(ctx), http.MethodPost, "/api/reset-password/request", req, nil)
}

func (c *HTTPClient) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	req := models.PasswordResetConfirm{Token: token, NewPassword: newPassword}
	return c.doJSON(withoutCredential(ctx), http.MethodPost, "/api/reset-password/confirm", req, nil)
}

func (c *HTTPClient) Me(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	if err := c.doJSON(ctx, http.MethodGet, "/api/users/me", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) UpdateMe(ctx context.Context, update models.ProfileUpdate, image *models.Image) error {
	body, contentType, err := multipartBody("data", update, image)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, "/api/users/me", nil, body, contentType, nil)
}

func (c *HTTPClient) DeleteProfilePicture(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/users/me/profile-pic", nil, nil)
}

func (c *HTTPClient) PublicProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	var p models.Profile
	path := "/api/users/" + strconv.FormatInt(userID, 10) + "/profile"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) SearchResources(ctx context.Context, title string) ([]models.Resource, error) {
	var out []models.Resource
	q := url.Values{"title": {title}}
	if err := c.do(ctx, http.MethodGet, "/api/resources/search", q, nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) FilterByPlatform(ctx context.Context, platform string) ([]models.Resource, error) {
	var out []models.Resource
	q := url.Values{"platform": {platform}}
	if err := c.do(ctx, http.MethodGet, "/api/resources/filter/platform", q, nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetResource(ctx context.Context, id int64) (*models.Resource, error) {
	var r models.Resource
	if err := c.doJSON(ctx, http.MethodGet, resourcePath(id), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *HTTPClient) CreateResource(ctx context.Context, resource models.Resource, image *models.Image) error {
	body, contentType, err := multipartBody("resource", resource, image)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/api/resources", nil, body, contentType, nil)
}

func (c *HTTPClient) UpdateResource(ctx context.Context, id int64, resource models.Resource) error {
	return c.doJSON(ctx, http.MethodPut, resourcePath(id), resource, nil)
}

func (c *HTTPClient) DeleteResource(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, resourcePath(id), nil, nil)
}

func (c *HTTPClient) SavedResources(ctx context.Context) ([]models.Resource, error) {
	var out []models.Resource
	if err := c.doJSON(ctx, http.MethodGet, "/api/resources/saved", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) UnsaveResource(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodPost, resourcePath(id)+"/unsave", nil, nil)
}

func resourcePath(id int64) string {
	return "/api/resources/" + strconv.FormatInt(id, 10)
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, nil, body, contentType, out)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return mapError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return mapError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := statusError(resp.StatusCode, errorMessage(data))
		c.log.Debug(ctx, "api error", "method", method, "path", path, "error", apiErr)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func errorMessage(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ""
	}
	var m models.Message
	if body[0] == '{' && json.Unmarshal(body, &m) == nil {
		return m.Text()
	}
	if len(body) > maxMessageSize {
		cut := maxMessageSize
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		body = body[:cut]
	}
	return string(body)
}

// multipartBody builds a form with a JSON part named field and an optional
// "image" file part.
func multipartBody(field string, payload any, image *models.Image) (io.Reader, string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, "", fmt.Errorf("encode %s part: %w", field, err)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", mime.FormatMediaType("form-data", map[string]string{"name": field, "filename": "blob"}))
	h.Set("Content-Type", "application/json")
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("create %s part: %w", field, err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", fmt.Errorf("write %s part: %w", field, err)
	}

	if !image.Empty() {
		name := image.Name
		if name == "" {
			name = "image"
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", mime.FormatMediaType("form-data", map[string]string{"name": "image", "filename": name}))
		h.Set("Content-Type", http.DetectContentType(image.Data))
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("create image part: %w", err)
		}
		if _, err := part.Write(image.Data); err != nil {
			return nil, "", fmt.Errorf("write image part: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
