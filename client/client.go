package client

import (
	"fmt"
	"time"

	"distracto-server/entities"
	"distracto-server/extension"

	"github.com/go-resty/resty/v2"
)

// Client is a typed wrapper over the REST surface. A bearer token is attached
// to every request once set; any 401 response invokes the unauthorized hook
// so the caller can clear credentials and re-login.
type Client struct {
	http           *resty.Client
	onUnauthorized func()
}

type Option func(*Client)

// WithUnauthorizedHook registers a callback fired whenever the server answers
// 401.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(15 * time.Second).
			SetHeader("Content-Type", "application/json"),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.http.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() == 401 && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil
	})
	return c
}

// SetToken attaches a bearer token to all subsequent requests.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

type errorBody struct {
	Error string `json:"error"`
}

type AuthResult struct {
	Token string        `json:"token"`
	User  entities.User `json:"user"`
}

type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

func apiErr(resp *resty.Response) error {
	if body, ok := resp.Error().(*errorBody); ok && body.Error != "" {
		return fmt.Errorf("%s (%d)", body.Error, resp.StatusCode())
	}
	return fmt.Errorf("request failed with status %d", resp.StatusCode())
}

func (c *Client) Register(email, password, displayName string) (*AuthResult, error) {
	var out AuthResult
	resp, err := c.http.R().
		SetBody(map[string]string{"email": email, "password": password, "displayName": displayName}).
		SetResult(&out).
		SetError(&errorBody{}).
		Post("/api/auth/register")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	c.SetToken(out.Token)
	return &out, nil
}

func (c *Client) Login(email, password string) (*AuthResult, error) {
	var out AuthResult
	resp, err := c.http.R().
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).
		SetError(&errorBody{}).
		Post("/api/auth/login")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	c.SetToken(out.Token)
	return &out, nil
}

func (c *Client) Me() (*entities.User, error) {
	var out dataEnvelope[entities.User]
	resp, err := c.http.R().
		SetResult(&out).
		SetError(&errorBody{}).
		Get("/api/users/me")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out.Data, nil
}

func (c *Client) SearchUsers(q string) ([]entities.User, error) {
	var out dataEnvelope[[]entities.User]
	resp, err := c.http.R().
		SetQueryParam("q", q).
		SetResult(&out).
		SetError(&errorBody{}).
		Get("/api/users/search")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return out.Data, nil
}

func (c *Client) Follow(userID string) error {
	resp, err := c.http.R().SetError(&errorBody{}).Post("/api/users/follow/" + userID)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiErr(resp)
	}
	return nil
}

func (c *Client) UpdateScreenTime(date time.Time, record *entities.ScreenTime) (*entities.ScreenTime, error) {
	var out dataEnvelope[entities.ScreenTime]
	resp, err := c.http.R().
		SetBody(record).
		SetResult(&out).
		SetError(&errorBody{}).
		Put("/api/screen-time/" + date.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out.Data, nil
}

func (c *Client) WeeklyScreenTime(start time.Time) ([]entities.ScreenTime, error) {
	var out dataEnvelope[[]entities.ScreenTime]
	resp, err := c.http.R().
		SetResult(&out).
		SetError(&errorBody{}).
		Get("/api/screen-time/weekly/" + start.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return out.Data, nil
}

// SyncExtensionData posts a raw extension payload and returns the normalized
// report the server derived from it.
func (c *Client) SyncExtensionData(payload map[string]interface{}) (*extension.Report, error) {
	var out dataEnvelope[extension.Report]
	resp, err := c.http.R().
		SetBody(payload).
		SetResult(&out).
		SetError(&errorBody{}).
		Post("/api/screen-time/sync")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out.Data, nil
}

func (c *Client) BlockSite(site *entities.BlockedSite) (*entities.BlockedSite, error) {
	var out dataEnvelope[entities.BlockedSite]
	resp, err := c.http.R().
		SetBody(site).
		SetResult(&out).
		SetError(&errorBody{}).
		Post("/api/website-blocker")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out.Data, nil
}

func (c *Client) BlockedSites() ([]entities.BlockedSite, error) {
	var out dataEnvelope[[]entities.BlockedSite]
	resp, err := c.http.R().
		SetResult(&out).
		SetError(&errorBody{}).
		Get("/api/website-blocker")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return out.Data, nil
}

func (c *Client) CreateTimetable(timetable *entities.Timetable) (*entities.Timetable, error) {
	var out dataEnvelope[entities.Timetable]
	resp, err := c.http.R().
		SetBody(timetable).
		SetResult(&out).
		SetError(&errorBody{}).
		Post("/api/timetable")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out.Data, nil
}

func (c *Client) GenerateTimetable(prompt string) (*entities.Timetable, error) {
	var out dataEnvelope[entities.Timetable]
	resp, err := c.http.R().
		SetBody(map[string]string{"prompt": prompt}).
		SetResult(&out).
		SetError(&errorBody{}).
		Post("/api/ai/timetable")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out.Data, nil
}

func (c *Client) CreateChat(participants []string, isGroup bool, groupName string) (*entities.Chat, error) {
	var out dataEnvelope[entities.Chat]
	resp, err := c.http.R().
		SetBody(map[string]interface{}{
			"participants": participants,
			"isGroupChat":  isGroup,
			"groupName":    groupName,
		}).
		SetResult(&out).
		SetError(&errorBody{}).
		Post("/api/social/chats")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out.Data, nil
}

func (c *Client) SendMessage(chatID, content string) (*entities.Message, error) {
	var out dataEnvelope[entities.Message]
	resp, err := c.http.R().
		SetBody(map[string]string{"content": content}).
		SetResult(&out).
		SetError(&errorBody{}).
		Post("/api/social/chats/" + chatID + "/messages")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out.Data, nil
}

func (c *Client) Health() (map[string]interface{}, error) {
	var out map[string]interface{}
	resp, err := c.http.R().
		SetResult(&out).
		SetError(&errorBody{}).
		Get("/api/health")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return out, nil
}
