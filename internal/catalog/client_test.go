package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MiniPekkaaa/MiniApp/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducts_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":1,"name":"Lager","fullName":"Lager Classic 0.5","volume":0.5,"price":120,"legalEntity":2},
			{"id":5,"name":"Stout","fullName":"Stout Export 0.5","volume":0.5,"price":150,"legalEntity":2}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	products, err := client.Products(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Lager", products[0].Name)
	assert.Equal(t, 0.5, products[0].Volume)
	assert.Equal(t, 2, products[0].LegalEntity)
}

func TestProducts_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	products, err := client.Products(context.Background())

	assert.Error(t, err)
	assert.Nil(t, products)
}

func TestProducts_BadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.Products(context.Background())

	assert.Error(t, err)
}

func TestProducts_CountsFetches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"_id": 1, "name": "Lager", "price": 120, "legalEntity": 1}]`))
	}))
	defer srv.Close()

	m := metrics.New()
	client := NewClient(srv.URL, m)

	_, err := client.Products(context.Background())
	require.NoError(t, err)
	_, err = client.Products(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CatalogFetches))
}

func TestProducts_SurvivesCanceledCaller(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"_id": 7, "name": "Stout", "price": 150, "legalEntity": 1}]`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(srv.URL, nil)
	products, err := client.Products(ctx)

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Stout", products[0].Name)
}
