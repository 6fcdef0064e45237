package api

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// testBackend mocks the slice of the FolioView REST backend the client
// talks to: token issuing/rotation plus a few data endpoints.
type testBackend struct {
	server *httptest.Server

	lock         sync.Mutex
	accessToken  string
	refreshToken string
	generation   int
	failRefresh  bool
	alwaysReject bool

	refreshCalls    atomic.Int32
	portfolioCalls  atomic.Int32
	lastAuthHeaders []string
}

func newTestBackend(t *testing.T) *testBackend {
	t.Helper()
	b := &testBackend{
		accessToken:  "access-1",
		refreshToken: "refresh-1",
		generation:   1,
	}
	e := echo.New()
	e.POST("/auth/login", b.loginEndpoint)
	e.POST("/auth/refresh", b.refreshEndpoint)
	e.GET("/auth/me", b.meEndpoint)
	e.GET("/portfolios", b.portfoliosEndpoint)
	e.GET("/portfolios/:id/transactions", b.transactionsEndpoint)
	e.POST("/reports/upload", b.uploadEndpoint)
	e.GET("/calendar/events", b.calendarEndpoint)
	e.GET("/broken", b.brokenEndpoint)
	e.GET("/missing", b.missingEndpoint)
	b.server = httptest.NewServer(e)
	t.Cleanup(b.server.Close)
	return b
}

func (b *testBackend) url(t *testing.T) *url.URL {
	t.Helper()
	parsed, err := url.Parse(b.server.URL)
	require.NoError(t, err)
	return parsed
}

func (b *testBackend) currentTokens() (string, string) {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.accessToken, b.refreshToken
}

func (b *testBackend) authorized(c echo.Context) bool {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	b.lock.Lock()
	b.lastAuthHeaders = append(b.lastAuthHeaders, header)
	accessToken := b.accessToken
	reject := b.alwaysReject
	b.lock.Unlock()
	if reject {
		return false
	}
	return header == "Bearer "+accessToken
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": "the access token is expired"})
}

func (b *testBackend) loginEndpoint(c echo.Context) error {
	body := map[string]string{}
	if err := c.Bind(&body); err != nil {
		return err
	}
	if body["email"] != "user@example.com" || body["password"] != "hunter2" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
	}
	accessToken, refreshToken := b.currentTokens()
	return c.JSON(http.StatusOK, map[string]any{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"user":         map[string]string{"id": "user-1", "email": "user@example.com", "name": "Test User"},
	})
}

func (b *testBackend) refreshEndpoint(c echo.Context) error {
	b.refreshCalls.Add(1)
	body := map[string]string{}
	if err := c.Bind(&body); err != nil {
		return err
	}
	b.lock.Lock()
	defer b.lock.Unlock()
	if b.failRefresh || body["refreshToken"] != b.refreshToken {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "the refresh token is invalid"})
	}
	b.generation++
	b.accessToken = fmt.Sprintf("access-%d", b.generation)
	b.refreshToken = fmt.Sprintf("refresh-%d", b.generation)
	return c.JSON(http.StatusOK, map[string]string{
		"accessToken":  b.accessToken,
		"refreshToken": b.refreshToken,
	})
}

func (b *testBackend) meEndpoint(c echo.Context) error {
	if !b.authorized(c) {
		return unauthorized(c)
	}
	return c.JSON(http.StatusOK, map[string]string{"id": "user-1", "email": "user@example.com", "name": "Test User"})
}

func (b *testBackend) portfoliosEndpoint(c echo.Context) error {
	b.portfolioCalls.Add(1)
	if !b.authorized(c) {
		return unauthorized(c)
	}
	return c.JSON(http.StatusOK, []map[string]string{
		{"id": "p-1", "name": "Main", "currency": "ILS"},
		{"id": "p-2", "name": "Pension", "currency": "USD"},
	})
}

func (b *testBackend) transactionsEndpoint(c echo.Context) error {
	if !b.authorized(c) {
		return unauthorized(c)
	}
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		fmt.Sscanf(raw, "%d", &page)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"transactions": []map[string]any{
			{"id": fmt.Sprintf("t-%d", page), "portfolioId": c.Param("id"), "symbol": "TEVA", "type": "buy"},
		},
		"page":       page,
		"perPage":    1,
		"totalPages": 3,
		"totalItems": 3,
	})
}

func (b *testBackend) uploadEndpoint(c echo.Context) error {
	if !b.authorized(c) {
		return unauthorized(c)
	}
	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "the file field is missing"})
	}
	opened, err := file.Open()
	if err != nil {
		return err
	}
	defer opened.Close()
	content, err := io.ReadAll(opened)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(string(content), "%PDF") {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"message": "not a PDF file"})
	}
	return c.JSON(http.StatusOK, map[string]int{"holdings": 12, "transactions": 34, "dividends": 5})
}

func (b *testBackend) calendarEndpoint(c echo.Context) error {
	if !b.authorized(c) {
		return unauthorized(c)
	}
	return c.JSON(http.StatusOK, []map[string]string{
		{"id": "e-1", "symbol": "TEVA", "market": "israel", "type": "earnings", "date": "2024-03-05T00:00:00Z"},
		{"id": "e-2", "symbol": "AAPL", "market": "world", "type": "dividend", "date": "2024-03-01T00:00:00Z"},
	})
}

func (b *testBackend) brokenEndpoint(c echo.Context) error {
	if !b.authorized(c) {
		return unauthorized(c)
	}
	return c.JSON(http.StatusBadRequest, map[string]string{"message": "the date range is invalid"})
}

func (b *testBackend) missingEndpoint(c echo.Context) error {
	if !b.authorized(c) {
		return unauthorized(c)
	}
	return c.NoContent(http.StatusNotFound)
}
