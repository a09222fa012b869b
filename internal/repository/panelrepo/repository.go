// Package panelrepo talks to the finpanel backend over its fixed REST
// contract. The token is injected by a request middleware registered once on
// the client; a response middleware watches every exchange for a 401 and
// tears the session down regardless of which call site triggered it.
package panelrepo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/finpanel/finpanel-client/internal/logging"
	"github.com/finpanel/finpanel-client/internal/repository/panelrepo/paneltypes"
	"github.com/finpanel/finpanel-client/internal/session"
	"github.com/finpanel/finpanel-client/internal/types"
)

const requestIDHeader = "X-Request-ID"

type RestRepository struct {
	BaseURL string
	Timeout time.Duration

	Sessions session.Store

	// OnUnauthorized fires whenever any authenticated call comes back 401.
	// The token has already been cleared when it runs.
	OnUnauthorized func()

	once sync.Once
	http *resty.Client
}

func (r *RestRepository) client() *resty.Client {
	r.once.Do(func() {
		c := resty.New().
			SetBaseURL(r.BaseURL).
			SetHeader("Content-Type", "application/json")

		if r.Timeout != 0 {
			c.SetTimeout(r.Timeout)
		}

		c.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			req.SetHeader(requestIDHeader, uuid.NewString())

			if token, ok := r.Sessions.Token(); ok {
				req.SetAuthToken(token)
			}
			return nil
		})

		c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			if resp.StatusCode() != 401 {
				return nil
			}

			log := logging.FromContext(resp.Request.Context())
			log.Warn("session expired, forcing logout",
				logging.String("path", resp.Request.URL),
				logging.String("request_id", resp.Request.Header.Get(requestIDHeader)),
			)

			if err := r.Sessions.Clear(); err != nil {
				log.Error("could not clear session token", logging.Error(err))
			}

			if r.OnUnauthorized != nil {
				r.OnUnauthorized()
			}

			return types.ErrAuth.New("session expired")
		})

		r.http = c
	})

	return r.http
}

// Login exchanges credentials for a bearer token. The backend expects a
// form-encoded body here, unlike every other endpoint.
func (r *RestRepository) Login(ctx context.Context, identifier, secret string) (string, error) {
	var out paneltypes.TokenResponse

	resp, err := r.client().R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormData(map[string]string{
			"username": identifier,
			"password": secret,
		}).
		SetResult(&out).
		Post("/auth/login")
	if err != nil {
		return "", wrapTransport(err)
	}

	if resp.IsError() {
		return "", types.ErrAuth.New("credentials rejected: status %d", resp.StatusCode())
	}

	if out.AccessToken == "" {
		return "", types.ErrAuth.New("login response carried no token")
	}

	return out.AccessToken, nil
}

func (r *RestRepository) Summary(ctx context.Context) (types.Summary, error) {
	var out paneltypes.SummaryResponse
	if err := r.get(ctx, "/dashboard/resumo", nil, &out); err != nil {
		return types.Summary{}, err
	}

	return out.ToDomain(), nil
}

func (r *RestRepository) CategoryBreakdown(ctx context.Context) ([]types.CategoryTotal, error) {
	var out []paneltypes.CategoryTotalResponse
	if err := r.get(ctx, "/dashboard/por-categoria", nil, &out); err != nil {
		return nil, err
	}

	totals := make([]types.CategoryTotal, 0, len(out))
	for _, it := range out {
		totals = append(totals, types.CategoryTotal{
			Category: it.Category,
			Total:    it.Total,
		})
	}

	return totals, nil
}

func (r *RestRepository) CashFlow(ctx context.Context) ([]types.CashFlowPoint, error) {
	var out []paneltypes.CashFlowResponse
	if err := r.get(ctx, "/dashboard/fluxo-caixa", nil, &out); err != nil {
		return nil, err
	}

	points := make([]types.CashFlowPoint, 0, len(out))
	for _, it := range out {
		points = append(points, types.CashFlowPoint{
			Month:   it.Month,
			Inflow:  it.Inflow,
			Outflow: it.Outflow,
		})
	}

	return points, nil
}

func (r *RestRepository) RecentEntries(ctx context.Context, limit int) ([]types.Entry, error) {
	var out []paneltypes.EntryResponse

	params := map[string]string{"limit": fmt.Sprintf("%d", limit)}
	if err := r.get(ctx, "/titulos", params, &out); err != nil {
		return nil, err
	}

	entries := make([]types.Entry, 0, len(out))
	for _, it := range out {
		entries = append(entries, it.ToDomain())
	}

	return entries, nil
}

func (r *RestRepository) Ranking(ctx context.Context) (types.Ranking, error) {
	var out paneltypes.RankingResponse
	if err := r.get(ctx, "/dashboard/ranking", nil, &out); err != nil {
		return types.Ranking{}, err
	}

	return out.ToDomain(), nil
}

func (r *RestRepository) Categories(ctx context.Context) ([]types.Category, error) {
	var out []paneltypes.CategoryResponse
	if err := r.get(ctx, "/categorias", nil, &out); err != nil {
		return nil, err
	}

	cats := make([]types.Category, 0, len(out))
	for _, it := range out {
		cats = append(cats, types.Category{
			ID:   it.ID,
			Name: it.Name,
		})
	}

	return cats, nil
}

func (r *RestRepository) SearchContacts(ctx context.Context, term string) ([]types.ContactMatch, error) {
	var out []paneltypes.ContactMatchResponse

	params := map[string]string{"q": term}
	if err := r.get(ctx, "/dashboard/busca-contato", params, &out); err != nil {
		return nil, err
	}

	matches := make([]types.ContactMatch, 0, len(out))
	for _, it := range out {
		matches = append(matches, types.ContactMatch{
			Name:       it.Name,
			Receivable: it.Receivable,
			Payable:    it.Payable,
		})
	}

	return matches, nil
}

// CreateEntry submits a new entry. The backend returns every row it created,
// which is more than one when the entry is split into installments.
func (r *RestRepository) CreateEntry(ctx context.Context, input types.CreateEntryInput) ([]types.Entry, error) {
	var out []paneltypes.EntryResponse

	resp, err := r.client().R().
		SetContext(ctx).
		SetBody(paneltypes.FromCreateInput(input)).
		SetResult(&out).
		Post("/titulos")
	if err != nil {
		return nil, wrapTransport(err)
	}

	if resp.IsError() {
		return nil, types.ErrTransport.New("create entry failed: status %d", resp.StatusCode())
	}

	entries := make([]types.Entry, 0, len(out))
	for _, it := range out {
		entries = append(entries, it.ToDomain())
	}

	return entries, nil
}

func (r *RestRepository) get(ctx context.Context, path string, params map[string]string, result any) error {
	req := r.client().R().
		SetContext(ctx).
		SetResult(result)

	if len(params) != 0 {
		req.SetQueryParams(params)
	}

	resp, err := req.Get(path)
	if err != nil {
		return wrapTransport(err)
	}

	if resp.IsError() {
		return types.ErrTransport.New("GET %s failed: status %d", path, resp.StatusCode())
	}

	return nil
}

// wrapTransport keeps auth classification intact: a 401 already surfaced as
// ErrAuth through the response middleware and must not be re-labelled.
func wrapTransport(err error) error {
	if types.ErrAuth.Has(err) {
		return err
	}
	return types.ErrTransport.Wrap(err)
}
