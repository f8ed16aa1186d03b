package stackexchange

import (
	"context"
	"encoding/json"
	"html"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/ldez/stackoverflow-slack-bot/pkg/domain/model"
	"github.com/ldez/stackoverflow-slack-bot/pkg/domain/types"
	"github.com/ldez/stackoverflow-slack-bot/pkg/utils/safe"
)

const (
	// DefaultAPIBaseURL is the StackExchange API 2.x endpoint
	DefaultAPIBaseURL = "https://api.stackexchange.com/2.3"
	// DefaultSite is the site parameter sent with every request
	DefaultSite = "stackoverflow"
)

// client implements Service interface
type client struct {
	baseURL    string
	site       string
	httpClient *http.Client
}

// Option is a functional option for client configuration
type Option func(*client)

// WithBaseURL overrides the API base URL
func WithBaseURL(baseURL string) Option {
	return func(c *client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithSite overrides the StackExchange site
func WithSite(site string) Option {
	return func(c *client) {
		c.site = site
	}
}

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// New creates a new StackExchange API service
func New(opts ...Option) Service {
	c := &client{
		baseURL:    DefaultAPIBaseURL,
		site:       DefaultSite,
		httpClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *client) FetchQuestions(ctx context.Context, tags string) (*model.QuestionList, error) {
	params := url.Values{
		"order":  {"desc"},
		"sort":   {"activity"},
		"tagged": {tags},
		"site":   {c.site},
	}

	var resp questionsResponse
	if err := c.getJSON(ctx, "/questions", params, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to fetch questions", goerr.V("tags", tags))
	}

	list := &model.QuestionList{
		Items:          make([]model.Question, 0, len(resp.Items)),
		QuotaMax:       resp.QuotaMax,
		QuotaRemaining: resp.QuotaRemaining,
	}
	for _, item := range resp.Items {
		list.Items = append(list.Items, model.Question{
			ID:               types.QuestionID(item.QuestionID),
			Title:            item.Title,
			LastActivityDate: item.LastActivityDate,
			CreationDate:     item.CreationDate,
			Link:             item.Link,
		})
	}

	return list, nil
}

func (c *client) FetchTimeline(ctx context.Context, ids []types.QuestionID) ([]model.TimelineEntry, error) {
	params := url.Values{
		"site": {c.site},
	}

	var resp timelineResponse
	path := "/questions/" + joinIDs(ids) + "/timeline"
	if err := c.getJSON(ctx, path, params, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to fetch timeline", goerr.V("ids", ids))
	}

	entries := make([]model.TimelineEntry, 0, len(resp.Items))
	for _, item := range resp.Items {
		entries = append(entries, model.TimelineEntry{
			Type:         types.TimelineType(item.TimelineType),
			QuestionID:   types.QuestionID(item.QuestionID),
			PostID:       types.PostID(item.PostID),
			CommentID:    types.CommentID(item.CommentID),
			CreationDate: item.CreationDate,
			Actor:        resolveActor(item.User, item.Owner),
		})
	}

	return entries, nil
}

func (c *client) FetchAnswers(ctx context.Context, ids []types.QuestionID, fromDate, toDate int64) ([]model.Answer, error) {
	params := url.Values{
		"fromdate": {strconv.FormatInt(fromDate, 10)},
		"todate":   {strconv.FormatInt(toDate, 10)},
		"order":    {"desc"},
		"sort":     {"activity"},
		"site":     {c.site},
	}

	var resp answersResponse
	path := "/questions/" + joinIDs(ids) + "/answers"
	if err := c.getJSON(ctx, path, params, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to fetch answers",
			goerr.V("ids", ids),
			goerr.V("fromDate", fromDate),
			goerr.V("toDate", toDate),
		)
	}

	answers := make([]model.Answer, 0, len(resp.Items))
	for _, item := range resp.Items {
		answers = append(answers, model.Answer{
			AnswerID:     types.AnswerID(item.AnswerID),
			QuestionID:   types.QuestionID(item.QuestionID),
			CreationDate: item.CreationDate,
			Owner:        resolveActorName(item.Owner),
		})
	}

	return answers, nil
}

func (c *client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	target := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to build request", goerr.V("url", target))
	}

	// The API always compresses responses; net/http handles gzip transparently.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "request failed", goerr.V("url", target))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return goerr.New("unexpected status code",
			goerr.V("url", target),
			goerr.V("status", resp.StatusCode),
		)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode response", goerr.V("url", target))
	}

	return nil
}

// resolveActor collapses the API's user/owner ambiguity: timeline entries
// carry the acting user under either key depending on the entry kind.
func resolveActor(user, owner *shallowUser) string {
	if user != nil && user.DisplayName != "" {
		return html.UnescapeString(user.DisplayName)
	}
	return resolveActorName(owner)
}

func resolveActorName(owner *shallowUser) string {
	if owner == nil {
		return ""
	}
	return html.UnescapeString(owner.DisplayName)
}

func joinIDs(ids []types.QuestionID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ";")
}
