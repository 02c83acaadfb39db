package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"layers-storefront/internal/catalog"
	"layers-storefront/internal/domain"
	"layers-storefront/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sessionClient struct {
	t       *testing.T
	handler http.Handler
	id      string
}

func newSessionClient(t *testing.T) *sessionClient {
	t.Helper()

	registry := session.NewRegistry(catalog.NewStore(), time.Hour, zap.NewNop())
	t.Cleanup(registry.Close)

	r := chi.NewRouter()
	NewSessionHandler(registry, zap.NewNop()).RegisterRoutes(r, nil)

	c := &sessionClient{t: t, handler: r}
	w := c.do(http.MethodPost, "/api/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionID)
	assert.Equal(t, domain.ViewHome, resp.Page.View.Kind)
	c.id = resp.SessionID
	return c
}

func (c *sessionClient) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	return w
}

func (c *sessionClient) post(path string, body interface{}) (int, SessionResponse) {
	c.t.Helper()
	w := c.do(http.MethodPost, "/api/sessions/"+c.id+path, body)

	var resp SessionResponse
	if w.Code == http.StatusOK {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w.Code, resp
}

func TestNavigate(t *testing.T) {
	c := newSessionClient(t)

	code, resp := c.post("/navigate", NavigateRequest{View: "About"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, c.id, resp.SessionID)
	assert.Equal(t, domain.ViewAbout, resp.Page.View.Kind)
	assert.Equal(t, 1, resp.Page.ScrollResets)
	require.NotNil(t, resp.Page.About)
}

func TestNavigateRejectsUnknownView(t *testing.T) {
	c := newSessionClient(t)

	code, _ := c.post("/navigate", NavigateRequest{View: "Cart"})
	assert.Equal(t, http.StatusBadRequest, code)

	w := c.do(http.MethodPost, "/api/sessions/"+c.id+"/navigate", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNavigateToDetailWithoutProductFallsBack(t *testing.T) {
	c := newSessionClient(t)

	code, resp := c.post("/navigate", NavigateRequest{View: "ProductDetail"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, domain.ViewCatalog, resp.Page.View.Kind)
	assert.True(t, resp.Page.View.Fallback)
	assert.NotNil(t, resp.Page.Catalog)
}

func TestCatalogFilterFlow(t *testing.T) {
	c := newSessionClient(t)

	code, _ := c.post("/filter", FilterRequest{Category: "Skins"})
	assert.Equal(t, http.StatusConflict, code, "filter outside the catalog view")

	c.post("/navigate", NavigateRequest{View: "Catalog"})
	code, resp := c.post("/filter", FilterRequest{Category: "Skins"})
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, resp.Page.Catalog)
	assert.Len(t, resp.Page.Catalog.Products, 2)

	code, _ = c.post("/filter", FilterRequest{Category: "Phones"})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestDetailFlow(t *testing.T) {
	c := newSessionClient(t)

	code, resp := c.post("/products/1/open", nil)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, resp.Page.Detail)
	assert.Equal(t, "/anarc-watch-black1.png", resp.Page.Detail.State.SelectedImage)

	w := c.do(http.MethodPost, "/api/sessions/"+c.id+"/detail/color", PickColorRequest{Name: "Silver Mist"})
	require.Equal(t, http.StatusOK, w.Code)
	var sel SelectionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sel))
	assert.True(t, sel.Accepted)
	assert.Equal(t, "/product-frost-blaze.png", sel.Page.Detail.State.SelectedImage)

	w = c.do(http.MethodPost, "/api/sessions/"+c.id+"/detail/image", PickImageRequest{Image: "/not-in-gallery.png"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sel))
	assert.False(t, sel.Accepted)
	assert.Equal(t, "/product-frost-blaze.png", sel.Page.Detail.State.SelectedImage)

	code, resp = c.post("/detail/cart", nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Page.Detail.State.AddedToCart)

	code, resp = c.post("/products/3/open", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, resp.Page.Detail.State.SelectedColor)
	assert.False(t, resp.Page.Detail.State.AddedToCart)
}

func TestDetailOperationsNeedDetailView(t *testing.T) {
	c := newSessionClient(t)

	code, _ := c.post("/detail/cart", nil)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = c.post("/products/99/open", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = c.post("/products/x/open", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestLoginFlow(t *testing.T) {
	c := newSessionClient(t)
	c.post("/navigate", NavigateRequest{View: "Login"})

	code, resp := c.post("/login/mode", LoginModeRequest{Mode: "signup"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "signup", string(resp.Page.Login.Form.Mode))

	code, resp = c.post("/login/password-visibility", nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Page.Login.Form.ShowPassword)

	code, _ = c.post("/login/mode", LoginModeRequest{Mode: "sso"})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestUnknownAndDeletedSessions(t *testing.T) {
	c := newSessionClient(t)

	w := c.do(http.MethodGet, "/api/sessions/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = c.do(http.MethodDelete, "/api/sessions/"+c.id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = c.do(http.MethodGet, "/api/sessions/"+c.id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
