package store

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"matchmaker-backend/internal/domain"

	"github.com/go-resty/resty/v2"
)

const projectsTable = "projects"

// RESTStore talks to the hosted Supabase project through its PostgREST API.
type RESTStore struct {
	BaseURL string
	APIKey  string
	http    *resty.Client
}

// NewRESTStore builds a store for a Supabase project URL
// (e.g. https://<ref>.supabase.co). timeout bounds every request.
func NewRESTStore(baseURL, apiKey string, timeout time.Duration) *RESTStore {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RESTStore{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		http:    resty.New().SetTimeout(timeout),
	}
}

func (s *RESTStore) FindProjects(ctx context.Context, q Query) ([]domain.Project, error) {
	if err := validate(q); err != nil {
		return nil, err
	}
	var projects []domain.Project
	resp, err := s.request(ctx).
		SetQueryParamsFromValues(queryParams(q)).
		SetResult(&projects).
		Get(s.tableURL())
	if err != nil {
		return nil, fmt.Errorf("supabase request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("supabase select: %s; body: %s", resp.Status(), resp.String())
	}
	return projects, nil
}

// InsertProjects posts all rows as a single bulk insert.
func (s *RESTStore) InsertProjects(ctx context.Context, projects []domain.Project) (int, error) {
	if len(projects) == 0 {
		return 0, nil
	}
	resp, err := s.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=minimal").
		SetBody(projects).
		Post(s.tableURL())
	if err != nil {
		return 0, fmt.Errorf("supabase request: %w", err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("supabase insert: %s; body: %s", resp.Status(), resp.String())
	}
	return len(projects), nil
}

// Ping fetches at most one id, the same probe the dashboard used.
func (s *RESTStore) Ping(ctx context.Context) error {
	resp, err := s.request(ctx).
		SetQueryParam("select", "project_id").
		SetQueryParam("limit", "1").
		Get(s.tableURL())
	if err != nil {
		return fmt.Errorf("supabase request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("supabase ping: %s", resp.Status())
	}
	return nil
}

func (s *RESTStore) request(ctx context.Context) *resty.Request {
	return s.http.R().SetContext(ctx).
		SetHeader("apikey", s.APIKey).
		SetHeader("Authorization", "Bearer "+s.APIKey).
		SetHeader("Accept", "application/json")
}

func (s *RESTStore) tableURL() string {
	return s.BaseURL + "/rest/v1/" + projectsTable
}

// queryParams renders q in PostgREST syntax: select=a,b&col=op.value.
func queryParams(q Query) url.Values {
	params := url.Values{}
	sel := "*"
	if len(q.Columns) > 0 {
		sel = strings.Join(q.Columns, ",")
	}
	params.Set("select", sel)
	for _, p := range q.Predicates {
		v := formatValue(p.Value)
		if p.Op == OpILike {
			v = "*" + v + "*"
		}
		params.Add(p.Column, string(p.Op)+"."+v)
	}
	params.Set("order", "project_id.asc")
	return params
}

func formatValue(v interface{}) string {
	switch t := v.(type) {
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
