package tests

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodcart/manager-svc/internal/domain"
	"foodcart/manager-svc/internal/geocoder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoMembers = `{"response":{"GeoObjectCollection":{"featureMember":[
	{"GeoObject":{"Point":{"pos":"37.617698 55.755864"}}},
	{"GeoObject":{"Point":{"pos":"30.315868 59.939095"}}}
]}}}`

func TestClient_Fetch(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		want       domain.Coordinates
		wantErr    error
		wantStatus int
	}{
		{
			name:   "first member wins",
			status: http.StatusOK,
			body:   twoMembers,
			want:   domain.Coordinates{Lon: 37.617698, Lat: 55.755864},
		},
		{
			name:    "no members",
			status:  http.StatusOK,
			body:    `{"response":{"GeoObjectCollection":{"featureMember":[]}}}`,
			wantErr: geocoder.ErrNoResults,
		},
		{
			name:       "provider error",
			status:     http.StatusForbidden,
			body:       `{"statusCode":403,"error":"Forbidden","message":"Invalid api key"}`,
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "malformed pos",
			status: http.StatusOK,
			body:   `{"response":{"GeoObjectCollection":{"featureMember":[{"GeoObject":{"Point":{"pos":"37.6"}}}]}}}`,
		},
		{
			name:   "malformed json",
			status: http.StatusOK,
			body:   `not json`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			var gotQuery map[string]string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				gotQuery = map[string]string{
					"geocode": q.Get("geocode"),
					"apikey":  q.Get("apikey"),
					"format":  q.Get("format"),
				}
				w.WriteHeader(testCase.status)
				w.Write([]byte(testCase.body))
			}))
			defer server.Close()

			client := geocoder.NewClient(server.URL, "secret", time.Second)
			got, err := client.Fetch(context.Background(), "Moscow, Red Square 1")

			assert.Equal(t, map[string]string{
				"geocode": "Moscow, Red Square 1",
				"apikey":  "secret",
				"format":  "json",
			}, gotQuery)

			switch {
			case testCase.wantErr != nil:
				assert.ErrorIs(t, err, testCase.wantErr)
			case testCase.wantStatus != 0:
				var statusErr *geocoder.StatusError
				require.True(t, errors.As(err, &statusErr))
				assert.Equal(t, testCase.wantStatus, statusErr.Code)
			case testCase.want != (domain.Coordinates{}):
				require.NoError(t, err)
				assert.Equal(t, testCase.want, got)
			default:
				assert.Error(t, err)
			}
		})
	}
}

func TestClient_FetchHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := geocoder.NewClient(server.URL, "k", 5*time.Second).Fetch(ctx, "Moscow")
	assert.Error(t, err)
}

func TestParsePos(t *testing.T) {
	got, err := geocoder.ParsePos(" 37.5 55.1 ")
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinates{Lon: 37.5, Lat: 55.1}, got)

	for _, bad := range []string{"", "1", "a 1", "1 b", "1 2 3"} {
		_, err := geocoder.ParsePos(bad)
		assert.Error(t, err, bad)
	}
}
