package cms

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"wookporium/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClient points a Client at a local test server.
func testClient(srv *httptest.Server) *Client {
	return &Client{
		httpClient: srv.Client(),
		baseURL:    srv.URL + "/v2023-05-03/data/query/production",
	}
}

func TestQueryDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("query"))
		fmt.Fprint(w, `{"result": {"title": "Festival Shirt"}, "ms": 3}`)
	}))
	defer srv.Close()

	var out struct {
		Title string `json:"title"`
	}
	err := testClient(srv).Query(context.Background(), `*[_type == "product"][0]`, nil, &out)

	require.NoError(t, err)
	assert.Equal(t, "Festival Shirt", out.Title)
}

func TestQueryNullResultIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result": null}`)
	}))
	defer srv.Close()

	var out map[string]interface{}
	err := testClient(srv).Query(context.Background(), `*[_type == "product" && slug.current == $slug][0]`, nil, &out)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQueryEncodesParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `"festival-shirt"`, r.URL.Query().Get("$slug"))
		fmt.Fprint(w, `{"result": {}}`)
	}))
	defer srv.Close()

	var out map[string]interface{}
	err := testClient(srv).Query(context.Background(), "q", map[string]string{"slug": "festival-shirt"}, &out)
	require.NoError(t, err)
}

func TestQueryNon200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "query parse error", http.StatusBadRequest)
	}))
	defer srv.Close()

	var out map[string]interface{}
	err := testClient(srv).Query(context.Background(), "q", nil, &out)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound, "transport errors are distinct from not found")
}

func TestRawProductMapsPluralOptionsToAxes(t *testing.T) {
	raw := rawProduct{
		ID:          "prod-1",
		Title:       "Festival Shirt",
		Slug:        rawSlug{Current: "festival-shirt"},
		Price:       20,
		HasVariants: true,
		IsAvailable: true,
		VariantOptions: rawVariantOptions{
			Sizes:  []string{"S", "M"},
			Colors: []string{"Red"},
		},
		Variants: []rawVariant{
			{SKU: "A", Size: "S", Color: "Red", Inventory: 3, IsAvailable: true},
		},
	}

	p := raw.toModel()

	assert.Equal(t, "festival-shirt", p.Slug)
	assert.Equal(t, []string{"S", "M"}, p.VariantOptions.ForAxis(models.AxisSize))
	assert.Equal(t, []string{"Red"}, p.VariantOptions.ForAxis(models.AxisColor))
	assert.Equal(t, "S", p.Variants[0].AxisValue(models.AxisSize))
}

func TestRawProductNormalizedAtBoundary(t *testing.T) {
	raw := rawProduct{
		ID:        "prod-2",
		Price:     -5,
		Inventory: -2,
		Variants: []rawVariant{
			{SKU: " X ", Inventory: -1},
		},
		HasVariants: true,
	}

	p := raw.toModel()

	assert.Equal(t, 0.0, p.BasePrice)
	assert.Equal(t, 0, p.Inventory)
	assert.Equal(t, "X", p.Variants[0].SKU)
	assert.Equal(t, 0, p.Variants[0].Inventory)
}

func TestRawProductDescriptionBlocks(t *testing.T) {
	raw := rawProduct{
		Description: []rawBlock{
			{Type: "block", Children: []struct {
				Text string `json:"text"`
			}{{Text: "Hand-stitched "}, {Text: "with love."}}},
			{Type: "image"},
		},
	}

	p := raw.toModel()

	require.Len(t, p.Description, 1, "non-text blocks are dropped")
	assert.Equal(t, "Hand-stitched with love.", p.Description[0].Text)
}

func TestServiceProductNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result": null}`)
	}))
	defer srv.Close()

	svc := NewService(testClient(srv), nil, 0)
	_, err := svc.ProductBySlug(context.Background(), "no-such-slug")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceHomepageDataFeaturedFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		switch {
		case query == productListQuery:
			fmt.Fprint(w, `{"result": [
				{"_id": "p1", "title": "One", "slug": {"current": "one"}, "price": 10, "isAvailable": true},
				{"_id": "p2", "title": "Two", "slug": {"current": "two"}, "price": 20, "isAvailable": true}
			]}`)
		default:
			fmt.Fprint(w, `{"result": null}`)
		}
	}))
	defer srv.Close()

	svc := NewService(testClient(srv), nil, 0)
	data, err := svc.HomepageData(context.Background())

	require.NoError(t, err)
	require.Len(t, data.FeaturedProducts, 2, "falls back to recent products when none are featured")
	assert.Equal(t, "one", data.FeaturedProducts[0].Slug)
	assert.Len(t, data.NewArrivals, 2)
	assert.Equal(t, "$10.00", data.FeaturedProducts[0].PriceDisplay)
}
