package client

import (
	"bytes"
	"context"
	"encoding/json"
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

	"github.com/dmitrijs2005/closet/internal/client/models"
	"github.com/dmitrijs2005/closet/internal/common"
	"github.com/dmitrijs2005/closet/internal/logging"
	"github.com/google/uuid"
)

// Operation names, used as error prefixes.
const (
	opListItems   = "failed to fetch items"
	opListOutfits = "failed to fetch outfits"
	opAddItem     = "failed to add item"
	opDelete      = "failed to delete"
	opOptions     = "failed to fetch options"
	opSearch      = "error fetching clothes"
	opSaveOutfit  = "error saving outfit"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
	logger  logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient validates baseURL and returns a client bound to it.
func NewHTTPClient(baseURL string, hc *http.Client, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("base url %q: missing host", baseURL)
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		logger:  logger,
	}, nil
}

func (c *HTTPClient) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

// do sends one request and decodes a 2xx JSON body into out (if non-nil).
func (c *HTTPClient) do(ctx context.Context, op, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	log := c.logger.With("method", method, "url", req.URL.String(), "request_id", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug(ctx, "request failed", "error", err)
		return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	log.Debug(ctx, "request done", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return &StatusError{Op: op, Code: resp.StatusCode, Status: statusText(resp)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrBadResponse, err)
	}
	return nil
}

func (c *HTTPClient) ListItems(ctx context.Context) ([]models.ClosetItem, error) {
	var items []models.ClosetItem
	if err := c.do(ctx, opListItems, http.MethodGet, "/", nil, nil, "", &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.ClosetItem{}
	}
	return items, nil
}

func (c *HTTPClient) ListOutfits(ctx context.Context) ([]models.Outfit, error) {
	var outfits []models.Outfit
	if err := c.do(ctx, opListOutfits, http.MethodGet, "/outfits", nil, nil, "", &outfits); err != nil {
		return nil, err
	}
	if outfits == nil {
		outfits = []models.Outfit{}
	}
	return outfits, nil
}

// AddItem uploads the item fields and image as multipart form data and
// returns the server's acknowledgement message.
func (c *HTTPClient) AddItem(ctx context.Context, item models.NewItem, image models.Image) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := []struct{ name, value string }{
		{"type", item.Type},
		{"color", item.Color},
		{"style", item.Style},
		{"occasion", item.Occasion},
	}
	for _, f := range fields {
		if err := mw.WriteField(f.name, f.value); err != nil {
			return "", fmt.Errorf("%s: %w", opAddItem, err)
		}
	}

	contentType := image.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", mime.FormatMediaType("form-data", map[string]string{
		"name":     "image",
		"filename": image.Filename,
	}))
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return "", fmt.Errorf("%s: %w", opAddItem, err)
	}
	if _, err := part.Write(image.Data); err != nil {
		return "", fmt.Errorf("%s: %w", opAddItem, err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("%s: %w", opAddItem, err)
	}

	var out models.AddItemResponse
	if err := c.do(ctx, opAddItem, http.MethodPost, "/add", nil, &buf, mw.FormDataContentType(), &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *HTTPClient) DeleteItem(ctx context.Context, id int64) error {
	return c.do(ctx, opDelete, http.MethodDelete, "/delete/"+strconv.FormatInt(id, 10), nil, nil, "", nil)
}

func (c *HTTPClient) DeleteOutfit(ctx context.Context, id int64) error {
	return c.do(ctx, opDelete, http.MethodDelete, "/outfits/"+strconv.FormatInt(id, 10), nil, nil, "", nil)
}

// CategoryOptions lists the distinct values stored for category.
func (c *HTTPClient) CategoryOptions(ctx context.Context, category models.Category) ([]string, error) {
	var options []string
	q := url.Values{"category": {string(category)}}
	if err := c.do(ctx, opOptions, http.MethodGet, "/options", q, nil, "", &options); err != nil {
		return nil, err
	}
	if options == nil {
		options = []string{}
	}
	return options, nil
}

func (c *HTTPClient) Search(ctx context.Context, search string, category models.Category) ([]models.ClosetItem, error) {
	var items []models.ClosetItem
	q := url.Values{"search": {search}, "category": {string(category)}}
	if err := c.do(ctx, opSearch, http.MethodGet, "/search", q, nil, "", &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.ClosetItem{}
	}
	return items, nil
}

func (c *HTTPClient) SaveOutfit(ctx context.Context, req models.SaveOutfitRequest) error {
	if req.Items == nil {
		req.Items = []int64{}
	}
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("%s: %w", opSaveOutfit, err)
	}
	return c.do(ctx, opSaveOutfit, http.MethodPost, "/outfits", nil, bytes.NewReader(body), "application/json", nil)
}
