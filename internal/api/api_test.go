package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
	"github.com/mahlalem-eng/themosthigh-backend/internal/repository"
	"github.com/mahlalem-eng/themosthigh-backend/internal/service"
)

const testAdminSecret = "test-secret"

func newTestServer() (*echo.Echo, *repository.Store) {
	store := repository.NewMemoryStore()

	catalog := service.NewCatalogService(store.Products, nil)
	carts := service.NewCartService(store.Carts, store.Products, service.NewGuestCartStore())
	orders := service.NewOrderService(store.Orders, carts, nil, nil)
	members := service.NewMembershipService(store.Members, nil)
	eft := service.NewEFTService(store.Orders, nil)
	users := service.NewUserService(store.Users, nil, "jwt-secret")

	productHandler := NewProductHandler(catalog)
	cartHandler := NewCartHandler(carts)
	orderHandler := NewOrderHandler(orders)
	membershipHandler := NewMembershipHandler(members)
	eftHandler := NewEFTHandler(eft)

	e := echo.New()
	g := e.Group("/api", Identity(users))
	admin := RequireAdmin(testAdminSecret)

	g.GET("/products", productHandler.ListProducts)
	g.GET("/products/:id", productHandler.GetProduct)
	g.POST("/products", productHandler.CreateProduct, admin)
	g.PATCH("/products/:id", productHandler.UpdateProduct, admin)
	g.POST("/cart", cartHandler.AddToCart)
	g.GET("/cart", cartHandler.ListCart)
	g.POST("/orders", orderHandler.CreateOrder)
	g.POST("/membership-applications", membershipHandler.SubmitApplication)
	g.PATCH("/membership-applications/:id/status", membershipHandler.SetStatus, admin)
	g.PATCH("/membership-applications/:id", membershipHandler.SetStatus, admin)
	g.POST("/eft-orders/confirm-payment", eftHandler.ConfirmPayment)

	return e, store
}

func doRequest(e *echo.Echo, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetMissingProductReturns404(t *testing.T) {
	e, _ := newTestServer()
	rec := doRequest(e, http.MethodGet, "/api/products/missing", "", nil)
	assert.Equal(t, 404, rec.Code)
}

func TestAdminGate(t *testing.T) {
	e, _ := newTestServer()
	body := `{"name":"Durban Poison","description":"Landrace sativa.","price":"120.00","category":"flower"}`

	rec := doRequest(e, http.MethodPost, "/api/products", body, nil)
	assert.Equal(t, 401, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/products", body, map[string]string{"Admin-Password": "wrong"})
	assert.Equal(t, 401, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/products", body, map[string]string{"Admin-Password": testAdminSecret})
	assert.Equal(t, 201, rec.Code)
}

func TestPartialProductUpdateKeepsStoredFields(t *testing.T) {
	e, _ := newTestServer()
	adminHeader := map[string]string{"Admin-Password": testAdminSecret}

	rec := doRequest(e, http.MethodPost, "/api/products",
		`{"name":"Durban Poison","description":"Landrace sativa.","price":"120.00","category":"flower","stock":10}`,
		adminHeader)
	require.Equal(t, 201, rec.Code)

	var created entity.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doRequest(e, http.MethodPatch, "/api/products/"+created.ID, `{"stock":5}`, adminHeader)
	require.Equal(t, 200, rec.Code)

	rec = doRequest(e, http.MethodGet, "/api/products/"+created.ID, "", nil)
	require.Equal(t, 200, rec.Code)

	var got entity.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 5, got.Stock)
	assert.Equal(t, "Durban Poison", got.Name)
	assert.Equal(t, "Landrace sativa.", got.Description)
	assert.Equal(t, "flower", got.Category)
	assert.True(t, decimal.RequireFromString("120.00").Equal(got.Price))
}

func TestAddToCartRequiresProductID(t *testing.T) {
	e, _ := newTestServer()
	rec := doRequest(e, http.MethodPost, "/api/cart", `{"quantity":1}`, nil)
	assert.Equal(t, 400, rec.Code)
}

func TestCreateOrderRequiresItems(t *testing.T) {
	e, _ := newTestServer()
	rec := doRequest(e, http.MethodPost, "/api/orders", `{"customerInfo":{"name":"T"}}`, nil)
	assert.Equal(t, 400, rec.Code)
}

func TestInvalidApplicationStatusReturns400(t *testing.T) {
	e, _ := newTestServer()

	rec := doRequest(e, http.MethodPost, "/api/membership-applications",
		`{"first_name":"T","last_name":"M","email":"t@example.com","phone":"082","date_of_birth":"1990-01-01","id_number":"123"}`, nil)
	require.Equal(t, 201, rec.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doRequest(e, http.MethodPatch, "/api/membership-applications/"+created.ID+"/status",
		`{"status":"bogus"}`, map[string]string{"Admin-Password": testAdminSecret})
	assert.Equal(t, 400, rec.Code)
}

func TestApplicationStatusAliasRoute(t *testing.T) {
	e, _ := newTestServer()

	rec := doRequest(e, http.MethodPost, "/api/membership-applications",
		`{"first_name":"T","last_name":"M","email":"t@example.com","phone":"082","date_of_birth":"1990-01-01","id_number":"123"}`, nil)
	require.Equal(t, 201, rec.Code)

	var created entity.MembershipApplication
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doRequest(e, http.MethodPatch, "/api/membership-applications/"+created.ID,
		`{"status":"approved"}`, map[string]string{"Admin-Password": testAdminSecret})
	require.Equal(t, 200, rec.Code)

	var approved entity.MembershipApplication
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &approved))
	assert.Equal(t, entity.ApplicationStatusApproved, approved.Status)
	assert.NotEmpty(t, approved.MemberNumber)
}

func TestConfirmPaymentUnknownReferenceReturns404(t *testing.T) {
	e, _ := newTestServer()
	rec := doRequest(e, http.MethodPost, "/api/eft-orders/confirm-payment", `{"orderReference":"nope"}`, nil)
	assert.Equal(t, 404, rec.Code)
}

func TestIncompleteApplicationReturns400(t *testing.T) {
	e, _ := newTestServer()
	rec := doRequest(e, http.MethodPost, "/api/membership-applications", `{"first_name":"T"}`, nil)
	assert.Equal(t, 400, rec.Code)
}
