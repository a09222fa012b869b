package proxy

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpanel/finpanel-client/internal/types"
)

type fakeClient struct {
	PanelClient

	categoriesCalls int
	createCalls     int
}

func (f *fakeClient) Categories(ctx context.Context) ([]types.Category, error) {
	f.categoriesCalls++
	return []types.Category{{ID: 1, Name: "Moradia"}}, nil
}

func (f *fakeClient) CreateEntry(ctx context.Context, input types.CreateEntryInput) ([]types.Entry, error) {
	f.createCalls++
	return nil, nil
}

func Test_CategoriesAreServedFromCache(t *testing.T) {
	inner := &fakeClient{}
	c := &CachingClient{Client: inner}

	first, err := c.Categories(context.Background())
	require.NoError(t, err)

	second, err := c.Categories(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.categoriesCalls)
}

func Test_CreateEntryInvalidatesCategoryCache(t *testing.T) {
	inner := &fakeClient{}
	c := &CachingClient{Client: inner}

	_, err := c.Categories(context.Background())
	require.NoError(t, err)

	_, err = c.CreateEntry(context.Background(), types.CreateEntryInput{
		Description: "Luz",
		Amount:      decimal.NewFromInt(120),
		DueDate:     "2026-09-20",
		Type:        types.Expense,
		CategoryID:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inner.createCalls)

	_, err = c.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, inner.categoriesCalls)
}
