package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roamify/models"
)

func newTestAPI(t *testing.T, handler http.HandlerFunc) (*API, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, 2*time.Second, zap.NewNop())
	return NewAPI(client), srv
}

func TestRequestsResolveUnderAPIPrefix(t *testing.T) {
	var gotPath string
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode([]models.Vehicle{})
	})

	_, err := api.Vehicles.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/vehicles", gotPath)
}

func TestBearerTokenAttachedFromContext(t *testing.T) {
	var gotAuth string
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(models.UserProfile{Username: "bob"})
	})

	ctx := WithToken(context.Background(), "tok-abc")
	profile, err := api.Users.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", gotAuth)
	assert.Equal(t, "bob", profile.Username)
}

func TestNoAuthorizationHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.TourPackage{})
	})

	_, err := api.Tours.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := api.Users.Profile(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestErrorBodyMessageExtracted(t *testing.T) {
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Date is required"})
	})

	_, err := api.Tours.Availability(context.Background(), 1, "", 2)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Date is required", apiErr.UserMessage())
	assert.Equal(t, http.StatusBadRequest, StatusOf(err))
}

func TestUnstructuredErrorFallsBackToGenericMessage(t *testing.T) {
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>oops</html>"))
	})

	_, err := api.Vehicles.List(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, GenericFailureMessage, apiErr.UserMessage())
}

func TestTimeoutDetected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 50*time.Millisecond, zap.NewNop())
	api := NewAPI(client)

	_, err := api.Vehicles.List(context.Background())
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
	assert.Equal(t, 0, StatusOf(err), "transport failures carry no HTTP status")
}

func TestTourBookingSentAsQueryParams(t *testing.T) {
	var gotQuery map[string]string
	var gotLen int64
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/tours/9/book", r.URL.Path)
		gotLen = r.ContentLength
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		json.NewEncoder(w).Encode(models.TourBookingConfirmation{BookingID: "BK123", TotalPrice: 4500})
	})

	conf, err := api.Tours.Book(context.Background(), 9, models.TourBookingRequest{
		Date:         "2026-09-15",
		Adults:       2,
		Children:     1,
		ContactName:  "Bob Lee",
		ContactEmail: "bob@example.com",
		ContactPhone: "555-0101",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"date":         "2026-09-15",
		"adults":       "2",
		"children":     "1",
		"contactName":  "Bob Lee",
		"contactEmail": "bob@example.com",
		"contactPhone": "555-0101",
	}, gotQuery)
	assert.LessOrEqual(t, gotLen, int64(0), "booking request has no body")
	assert.Equal(t, "BK123", conf.BookingID)
	assert.Equal(t, 4500.0, conf.TotalPrice)
}

func TestHiddenGemQueryOmitsUnsetFilters(t *testing.T) {
	q := HiddenGemQuery{Page: 0, Size: 12, Sort: "createdAt,desc"}
	v := q.Values()

	assert.Equal(t, "0", v.Get("page"))
	assert.Equal(t, "12", v.Get("size"))
	assert.Equal(t, "createdAt,desc", v.Get("sort"))
	for _, key := range []string{"search", "stateId", "adventureTypeId", "difficulty"} {
		assert.NotContains(t, v, key)
	}

	q = HiddenGemQuery{Page: 2, Size: 12, Search: "falls", StateID: 3, AdventureTypeID: 7, Difficulty: "HARD"}
	v = q.Values()
	assert.Equal(t, "falls", v.Get("search"))
	assert.Equal(t, "3", v.Get("stateId"))
	assert.Equal(t, "7", v.Get("adventureTypeId"))
	assert.Equal(t, "HARD", v.Get("difficulty"))
}

func TestSignInDecodesUserRecord(t *testing.T) {
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/signin", r.URL.Path)
		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "bob", creds.Username)
		json.NewEncoder(w).Encode(models.SignInResponse{
			Token:    "jwt-token",
			Username: "bob",
			Email:    "bob@example.com",
			Roles:    []string{models.RoleUser},
		})
	})

	res, err := api.Auth.SignIn(context.Background(), models.Credentials{Username: "bob", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", res.Token)

	user := res.User()
	assert.Equal(t, "bob", user.Username)
	assert.True(t, user.HasRole(models.RoleUser))
	assert.False(t, user.HasRole(models.RoleAdmin))
}

func TestDeleteEndpointsSendNoBody(t *testing.T) {
	var gotMethod, gotPath string
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, api.HiddenGems.Unbookmark(context.Background(), 5))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/hidden-gems/5/bookmark", gotPath)
}
