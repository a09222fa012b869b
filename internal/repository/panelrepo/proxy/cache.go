// Package proxy wraps a panel client with a read-through cache for the
// category reference list. Categories are read-only data that changes rarely
// but is fetched on every dashboard load.
package proxy

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/finpanel/finpanel-client/internal/types"
)

type PanelClient interface {
	Login(ctx context.Context, identifier, secret string) (string, error)
	Summary(ctx context.Context) (types.Summary, error)
	CategoryBreakdown(ctx context.Context) ([]types.CategoryTotal, error)
	CashFlow(ctx context.Context) ([]types.CashFlowPoint, error)
	RecentEntries(ctx context.Context, limit int) ([]types.Entry, error)
	Ranking(ctx context.Context) (types.Ranking, error)
	Categories(ctx context.Context) ([]types.Category, error)
	SearchContacts(ctx context.Context, term string) ([]types.ContactMatch, error)
	CreateEntry(ctx context.Context, input types.CreateEntryInput) ([]types.Entry, error)
}

type inMemoryCache interface {
	SetDefault(k string, v any)
	Get(k string) (any, bool)
	Delete(k string)
}

type CachingClient struct {
	Client          PanelClient
	ExpirationTime  time.Duration
	CleanupInterval time.Duration

	once  sync.Once
	cache inMemoryCache
}

const categoriesKey = "categories"

func (c *CachingClient) init() {
	c.once.Do(func() {
		const (
			defaultExpirationTime  = 5 * time.Minute
			defaultCleanupInterval = 1 * time.Minute
		)

		expTime := defaultExpirationTime
		if c.ExpirationTime != 0 {
			expTime = c.ExpirationTime
		}

		cleanupInt := defaultCleanupInterval
		if c.CleanupInterval != 0 {
			cleanupInt = c.CleanupInterval
		}

		c.cache = cache.New(expTime, cleanupInt)
	})
}

func (c *CachingClient) Categories(ctx context.Context) ([]types.Category, error) {
	c.init()

	if v, found := c.cache.Get(categoriesKey); found {
		return v.([]types.Category), nil
	}

	v, err := c.Client.Categories(ctx)
	if err != nil {
		return nil, err
	}

	c.cache.SetDefault(categoriesKey, v)
	return v, nil
}

// CreateEntry invalidates the cached category list: the backend may create
// bookkeeping categories as a side effect of a new entry.
func (c *CachingClient) CreateEntry(ctx context.Context, input types.CreateEntryInput) ([]types.Entry, error) {
	c.init()
	defer c.cache.Delete(categoriesKey)

	return c.Client.CreateEntry(ctx, input)
}

func (c *CachingClient) Login(ctx context.Context, identifier, secret string) (string, error) {
	return c.Client.Login(ctx, identifier, secret)
}

func (c *CachingClient) Summary(ctx context.Context) (types.Summary, error) {
	return c.Client.Summary(ctx)
}

func (c *CachingClient) CategoryBreakdown(ctx context.Context) ([]types.CategoryTotal, error) {
	return c.Client.CategoryBreakdown(ctx)
}

func (c *CachingClient) CashFlow(ctx context.Context) ([]types.CashFlowPoint, error) {
	return c.Client.CashFlow(ctx)
}

func (c *CachingClient) RecentEntries(ctx context.Context, limit int) ([]types.Entry, error) {
	return c.Client.RecentEntries(ctx, limit)
}

func (c *CachingClient) Ranking(ctx context.Context) (types.Ranking, error) {
	return c.Client.Ranking(ctx)
}

func (c *CachingClient) SearchContacts(ctx context.Context, term string) ([]types.ContactMatch, error) {
	return c.Client.SearchContacts(ctx, term)
}
