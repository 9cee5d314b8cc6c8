package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/legoland/storefront/internal/handlers"
	"github.com/legoland/storefront/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := store.NewMemory()
	require.NoError(t, store.EnsureDefaults(context.Background(), s))
	return SetupRouter(handlers.New(s))
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

func TestHomePageRendersCatalog(t *testing.T) {
	router := newTestRouter(t)

	w := get(router, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Galaxy Rocket Builder")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestProductPageNotFoundState(t *testing.T) {
	router := newTestRouter(t)

	w := get(router, "/product?id=ll-nope")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")
}

func TestAddToCartThenCartPage(t *testing.T) {
	router := newTestRouter(t)

	w := postForm(router, "/cart/add", url.Values{"productId": {"ll-rocket"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	w = get(router, "/cart")
	assert.Contains(t, w.Body.String(), "Galaxy Rocket Builder")
	assert.Contains(t, w.Body.String(), "$54.99")
}

func TestCheckoutFlow(t *testing.T) {
	router := newTestRouter(t)

	postForm(router, "/cart/add", url.Values{"productId": {"ll-rocket"}})
	postForm(router, "/cart/add", url.Values{"productId": {"ll-rocket"}})

	w := postForm(router, "/checkout", url.Values{
		"fullName": {"A"},
		"email":    {"a@b.com"},
		"address":  {"1 Brick Rd"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/order-success", w.Header().Get("Location"))

	w = get(router, "/order-success")
	assert.Contains(t, w.Body.String(), "confirmed!")
	assert.Contains(t, w.Body.String(), "$109.98")

	// Checkout emptied the cart.
	w = get(router, "/cart")
	assert.Contains(t, w.Body.String(), "Your cart is empty")
}

func TestCheckoutEmptyCartShowsNotice(t *testing.T) {
	router := newTestRouter(t)

	w := postForm(router, "/checkout", url.Values{"fullName": {"A"}, "email": {"a@b.com"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Your cart is empty")
}

func TestLoginThenProfile(t *testing.T) {
	router := newTestRouter(t)

	w := get(router, "/profile")
	assert.Contains(t, w.Body.String(), "Please sign in")

	w = postForm(router, "/login", url.Values{"name": {"A"}, "email": {"a@b.com"}, "role": {"shopper"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/profile", w.Header().Get("Location"))

	w = get(router, "/profile")
	assert.Contains(t, w.Body.String(), "Welcome back, A!")
	assert.Contains(t, w.Body.String(), "a@b.com")
}

func TestAdminCreateProductAndStatusChange(t *testing.T) {
	router := newTestRouter(t)

	w := postForm(router, "/admin/products", url.Values{
		"name":        {"Pirate Cove Set"},
		"category":    {"Sea Adventures"},
		"price":       {"49.50"},
		"age":         {"6+"},
		"stock":       {"12"},
		"description": {"Cove with a ship."},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = get(router, "/admin")
	assert.Contains(t, w.Body.String(), "Pirate Cove Set")

	// Place an order, then move its status from the dashboard.
	postForm(router, "/cart/add", url.Values{"productId": {"ll-zoo"}})
	postForm(router, "/checkout", url.Values{"fullName": {"A"}, "email": {"a@b.com"}})

	body := get(router, "/admin").Body.String()
	start := strings.Index(body, "#")
	require.GreaterOrEqual(t, start, 0)
	orderID := body[start+1 : start+6]

	w = postForm(router, "/admin/orders/status", url.Values{"orderId": {orderID}, "status": {"Shipped"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, get(router, "/admin").Body.String(), `value="Shipped" selected`)
}

func TestAdminStatusRejectsUnknownStatus(t *testing.T) {
	router := newTestRouter(t)
	w := postForm(router, "/admin/orders/status", url.Values{"orderId": {"12345"}, "status": {"Lost"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
