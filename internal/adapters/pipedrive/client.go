package pipedrive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/trainingops/dealsync/internal/domain"
	"github.com/trainingops/dealsync/internal/logging"
	"github.com/trainingops/dealsync/internal/ports"
	"github.com/trainingops/dealsync/internal/remote"
)

const (
	defaultPageSize = 100
	defaultTimeout  = 30 * time.Second
	apiTokenHeader  = "x-api-token"
)

// Options configures a Client. One of AccessToken or APIToken is required;
// AccessToken wins when both are set.
type Options struct {
	AccessToken string
	APIToken    string
	BaseURL     string
	HTTPClient  *http.Client
	PageSize    int
}

// Client implements ports.CRMClient over the Pipedrive v1 REST API
type Client struct {
	apiToken string
	baseURL  string
	http     *http.Client
	pageSize int
}

// Verify interface compliance at compile time
var _ ports.CRMClient = (*Client)(nil)

// NewClient creates a new Client
func NewClient(opts Options) (*Client, error) {
	if opts.AccessToken == "" && opts.APIToken == "" {
		return nil, errors.New("crm credentials missing: set an access token or an api token")
	}

	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid crm base url %q: %w", opts.BaseURL, err)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	client := &Client{
		baseURL:  baseURL,
		http:     httpClient,
		pageSize: opts.PageSize,
	}
	if client.pageSize <= 0 {
		client.pageSize = defaultPageSize
	}

	if opts.AccessToken != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.AccessToken, TokenType: "Bearer"})
		client.http = oauth2.NewClient(ctx, source)
		client.http.Timeout = httpClient.Timeout
	} else {
		client.apiToken = opts.APIToken
	}

	return client, nil
}

// envelope is the wrapper every v1 response shares
type envelope struct {
	AdditionalData struct {
		Pagination *pagination `json:"pagination"`
	} `json:"additional_data"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Success bool            `json:"success"`
}

type pagination struct {
	MoreItemsInCollection bool `json:"more_items_in_collection"`
	NextStart             int  `json:"next_start"`
}

// GetDeal implements CRMClient.GetDeal
func (c *Client) GetDeal(ctx context.Context, id int64) (*remote.Deal, error) {
	return getObject[remote.Deal](ctx, c, fmt.Sprintf("/deals/%d", id))
}

// GetOrganization implements CRMClient.GetOrganization
func (c *Client) GetOrganization(ctx context.Context, id int64) (*remote.Organization, error) {
	return getObject[remote.Organization](ctx, c, fmt.Sprintf("/organizations/%d", id))
}

// GetPerson implements CRMClient.GetPerson
func (c *Client) GetPerson(ctx context.Context, id int64) (*remote.Person, error) {
	return getObject[remote.Person](ctx, c, fmt.Sprintf("/persons/%d", id))
}

// GetDealProducts implements CRMClient.GetDealProducts
func (c *Client) GetDealProducts(ctx context.Context, dealID int64) ([]remote.Product, error) {
	return getList[remote.Product](ctx, c, fmt.Sprintf("/deals/%d/products", dealID), nil)
}

// GetDealNotes implements CRMClient.GetDealNotes
func (c *Client) GetDealNotes(ctx context.Context, dealID int64) ([]remote.Note, error) {
	query := url.Values{"deal_id": {strconv.FormatInt(dealID, 10)}}
	return getList[remote.Note](ctx, c, "/notes", query)
}

// GetDealFiles implements CRMClient.GetDealFiles.
// Files without a url get the API download link.
func (c *Client) GetDealFiles(ctx context.Context, dealID int64) ([]remote.File, error) {
	files, err := getList[remote.File](ctx, c, fmt.Sprintf("/deals/%d/files", dealID), nil)
	if err != nil {
		return nil, err
	}
	for i := range files {
		if files[i].URL == "" {
			files[i].URL = c.DownloadURL(files[i].ID)
		}
	}
	return files, nil
}

// DownloadURL returns the API link that serves a file's content
func (c *Client) DownloadURL(fileID int64) string {
	return fmt.Sprintf("%s/files/%d/download", c.baseURL, fileID)
}

func getObject[T any](ctx context.Context, c *Client, path string) (*T, error) {
	env, err := c.get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	if isNull(env.Data) {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrRemoteNotFound)
	}

	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return &out, nil
}

func getList[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	items := []T{}
	start := 0
	for {
		q := url.Values{}
		for k, v := range query {
			q[k] = v
		}
		q.Set("start", strconv.Itoa(start))
		q.Set("limit", strconv.Itoa(c.pageSize))

		env, err := c.get(ctx, path, q)
		if err != nil {
			return nil, err
		}

		if !isNull(env.Data) {
			var page []T
			if err := json.Unmarshal(env.Data, &page); err != nil {
				return nil, fmt.Errorf("failed to decode %s: %w", path, err)
			}
			items = append(items, page...)
		}

		p := env.AdditionalData.Pagination
		if p == nil || !p.MoreItemsInCollection || p.NextStart <= start {
			return items, nil
		}
		start = p.NextStart
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*envelope, error) {
	endpoint := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiToken != "" {
		req.Header.Set(apiTokenHeader, c.apiToken)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", path, redactURLError(err))
	}
	defer resp.Body.Close()

	logging.Logger.Debug("crm request",
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(started),
	)

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrRemoteNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("crm returned %d for %s: %s", resp.StatusCode, path, snippet(body))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if !env.Success {
		return nil, fmt.Errorf("crm rejected %s: %s", path, env.Error)
	}

	return &env, nil
}

// redactURLError drops the query string from transport errors so request
// parameters never reach logs
func redactURLError(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	redacted := *urlErr
	if u, parseErr := url.Parse(urlErr.URL); parseErr == nil {
		u.RawQuery = ""
		u.User = nil
		redacted.URL = u.String()
	} else {
		redacted.URL = "<redacted>"
	}
	return &redacted
}

func isNull(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
