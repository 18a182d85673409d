// Package coach talks to the remote motivation and chat endpoints. When they cannot answer,
// it replies with a canned message instead of an error.
package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/julianstephens/bodysoul/internal/constants"
	bserrors "github.com/julianstephens/bodysoul/internal/errors"
	"github.com/julianstephens/bodysoul/internal/logger"
	"github.com/julianstephens/bodysoul/internal/models"
)

// Request is the body sent to both endpoints. Area only picks the canned reply.
type Request struct {
	Name    string  `json:"name"`
	Week    int     `json:"week"`
	Points  float64 `json:"points"`
	Message string  `json:"message"`
	Area    Area    `json:"-"`
}

// NewRequest fills a request from the profile.
func NewRequest(p *models.UserProfile, message string, area Area) Request {
	return Request{
		Name:    p.Name,
		Week:    p.CurrentChallengeWeek,
		Points:  p.Points,
		Message: message,
		Area:    area,
	}
}

type Reply struct {
	Text     string
	Fallback bool
}

type response struct {
	Text string `json:"text"`
}

type Client struct {
	motivationURL string
	chatURL       string
	timeout       time.Duration
	http          *http.Client
}

type Option func(*Client)

// WithTimeout bounds each call. The default is constants.CoachTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient replaces the default http client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func New(motivationURL, chatURL string, opts ...Option) *Client {
	c := &Client{
		motivationURL: strings.TrimSpace(motivationURL),
		chatURL:       strings.TrimSpace(chatURL),
		timeout:       constants.CoachTimeout,
		http:          http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Motivate asks for a motivational message for req.Area.
func (c *Client) Motivate(ctx context.Context, req Request) Reply {
	return c.ask(ctx, c.motivationURL, req)
}

// Chat sends the user's message to the chat endpoint.
func (c *Client) Chat(ctx context.Context, req Request) Reply {
	if req.Area == "" {
		req.Area = AreaPeaceOfMind
	}
	return c.ask(ctx, c.chatURL, req)
}

func (c *Client) ask(ctx context.Context, endpoint string, req Request) Reply {
	text, err := c.post(ctx, endpoint, req)
	if err != nil {
		logger.Warn("Coach unavailable, using canned reply", "error", err)
		return Reply{Text: Canned(req.Area, req.Week), Fallback: true}
	}
	return Reply{Text: text}
}

func (c *Client) post(ctx context.Context, endpoint string, req Request) (string, error) {
	if endpoint == "" {
		return "", &bserrors.RemoteCallFailure{Endpoint: "(unset)", Err: errors.New("no endpoint configured")}
	}
	fail := func(err error) (string, error) {
		return "", &bserrors.RemoteCallFailure{Endpoint: endpoint, Err: err}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fail(err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fail(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(httpReq)
	if err != nil {
		return fail(err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fail(fmt.Errorf("status %d: %s", res.StatusCode, strings.TrimSpace(string(msg))))
	}

	var out response
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return fail(fmt.Errorf("decoding response: %w", err))
	}
	text := strings.TrimSpace(out.Text)
	if text == "" {
		return fail(errors.New("empty response text"))
	}
	return text, nil
}
