package httpapi_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "restopos/terminal-svc/internal/api/http"
	"restopos/terminal-svc/internal/apiclient"
	"restopos/terminal-svc/internal/domain"
	"restopos/terminal-svc/internal/mocks"
	"restopos/terminal-svc/internal/receipt"
	"restopos/terminal-svc/internal/service"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	auth     *mocks.AuthService
	catalog  *mocks.CatalogService
	orders   *mocks.OrderService
	checkout *mocks.CheckoutService
	router   http.Handler
}

func newFixture(t *testing.T) fixture {
	f := fixture{
		auth:     mocks.NewAuthService(t),
		catalog:  mocks.NewCatalogService(t),
		orders:   mocks.NewOrderService(t),
		checkout: mocks.NewCheckoutService(t),
	}
	logger, _ := test.NewNullLogger()
	renderer := receipt.NewRenderer(receipt.DefaultQRGenerator{BaseURL: "http://pos.local"}, nil)
	handler := httpapi.NewHandler(f.auth, f.catalog, f.orders, f.checkout, renderer, logger)
	f.router = httpapi.NewRouter(handler, []string{"http://pos.local"})
	return f
}

// signIn makes the session resolvable for the next request.
func (f fixture) signIn(role domain.Role) *domain.Session {
	session := &domain.Session{
		ID:    "sess-" + string(role),
		Token: "token",
		User:  domain.User{ID: 3, Name: "Rina", Role: role},
	}
	f.auth.On("Resolve", mock.Anything, session.ID).Return(session, nil).Once()
	return session
}

func (f fixture) do(method, path, body, sessionID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(httpapi.SessionHeader, sessionID)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestHealthCheck(t *testing.T) {
	f := newFixture(t)

	w := f.do("GET", "/health", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "terminal-svc", body["service"])
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*mocks.AuthService)
		wantCode  int
	}{
		{
			name: "valid credentials",
			body: `{"email":"rina@resto.id","password":"rahasia"}`,
			setupMock: func(m *mocks.AuthService) {
				m.On("Login", mock.Anything, domain.LoginRequest{Email: "rina@resto.id", Password: "rahasia"}).
					Return(&domain.Session{ID: "s1", User: domain.User{Role: domain.RoleCashier}}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name: "rejected credentials",
			body: `{"email":"rina@resto.id","password":"salah"}`,
			setupMock: func(m *mocks.AuthService) {
				m.On("Login", mock.Anything, mock.Anything).Return(nil, apiclient.ErrUnauthorized).Once()
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "field errors",
			body: `{"email":"bukan-email"}`,
			setupMock: func(m *mocks.AuthService) {
				m.On("Login", mock.Anything, mock.Anything).
					Return(nil, domain.ValidationErrors{"email": "Format email tidak valid"}).Once()
			},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:      "invalid JSON",
			body:      `{invalid}`,
			setupMock: func(m *mocks.AuthService) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			testCase.setupMock(f.auth)

			w := f.do("POST", "/api/auth/login", testCase.body, "")

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestLoginHandler_ReturnsCapabilities(t *testing.T) {
	f := newFixture(t)
	f.auth.On("Login", mock.Anything, mock.Anything).
		Return(&domain.Session{ID: "s1", User: domain.User{Name: "Rina", Role: domain.RoleCashier}}, nil).Once()

	w := f.do("POST", "/api/auth/login", `{"email":"rina@resto.id","password":"rahasia"}`, "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "s1", body["session_id"])
	assert.Contains(t, body["capabilities"], string(domain.CapCloseOrder))
	assert.NotContains(t, body["screens"], "/foods")
}

func TestMissingSessionRedirectsToLogin(t *testing.T) {
	f := newFixture(t)
	f.auth.On("Resolve", mock.Anything, "").Return(nil, service.ErrSessionNotFound).Once()

	w := f.do("GET", "/api/tables", "", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "/login", decodeBody(t, w)["redirect"])
	f.orders.AssertNotCalled(t, "DropSession", mock.Anything)
}

func TestExpiredSessionDropsItsScreens(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantDrop bool
		wantCode int
	}{
		{name: "session gone from store", err: service.ErrSessionNotFound, wantDrop: true, wantCode: http.StatusUnauthorized},
		{name: "token expired", err: apiclient.ErrUnauthorized, wantDrop: true, wantCode: http.StatusUnauthorized},
		{name: "store unavailable", err: assert.AnError, wantCode: http.StatusBadGateway},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			f.auth.On("Resolve", mock.Anything, "sess-old").Return(nil, testCase.err).Once()
			if testCase.wantDrop {
				f.orders.On("DropSession", "sess-old").Return().Once()
			}

			w := f.do("GET", "/api/screens/scr-1", "", "sess-old")

			assert.Equal(t, testCase.wantCode, w.Code)
			if !testCase.wantDrop {
				f.orders.AssertNotCalled(t, "DropSession", mock.Anything)
			}
		})
	}
}

func TestUpstreamUnauthorizedEndsSession(t *testing.T) {
	f := newFixture(t)
	session := f.signIn(domain.RoleWaiter)
	f.orders.On("Submit", mock.Anything, session, "scr-1").
		Return(nil, &service.OperationError{Notice: service.NoticeOrderSendFailed, Err: apiclient.ErrUnauthorized}).Once()
	f.auth.On("Logout", mock.Anything, session.ID).Return(nil).Once()
	f.orders.On("DropSession", session.ID).Return().Once()

	w := f.do("POST", "/api/screens/scr-1/submit", "", session.ID)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "/login", decodeBody(t, w)["redirect"])
}

func TestSubmitHandler(t *testing.T) {
	tests := []struct {
		name     string
		result   *service.SubmitResult
		err      error
		wantCode int
	}{
		{
			name:     "new order navigates",
			result:   &service.SubmitResult{Order: &domain.Order{ID: 41}, Navigate: "/orders/41", Message: service.NoticeOrderSent},
			wantCode: http.StatusCreated,
		},
		{
			name:     "items added to open order",
			result:   &service.SubmitResult{Order: &domain.Order{ID: 41}, Message: service.NoticeOrderSent},
			wantCode: http.StatusOK,
		},
		{
			name:     "empty cart",
			err:      service.ErrEmptyCart,
			wantCode: http.StatusConflict,
		},
		{
			name:     "backend failure",
			err:      &service.OperationError{Notice: service.NoticeOrderSendFailed, Err: &apiclient.APIError{Status: 500}},
			wantCode: http.StatusBadGateway,
		},
		{
			name:     "cashier cannot create",
			err:      service.ErrForbidden,
			wantCode: http.StatusForbidden,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			session := f.signIn(domain.RoleWaiter)
			f.orders.On("Submit", mock.Anything, session, "scr-1").Return(testCase.result, testCase.err).Once()

			w := f.do("POST", "/api/screens/scr-1/submit", "", session.ID)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.result != nil {
				body := decodeBody(t, w)
				assert.Equal(t, testCase.result.Navigate, body["navigate"])
				assert.Equal(t, service.NoticeOrderSent, body["message"])
			}
		})
	}
}

func TestSubmitHandler_FailureNotice(t *testing.T) {
	f := newFixture(t)
	session := f.signIn(domain.RoleWaiter)
	f.orders.On("Submit", mock.Anything, session, "scr-1").
		Return(nil, &service.OperationError{Notice: service.NoticeOrderSendFailed, Err: assert.AnError}).Once()

	w := f.do("POST", "/api/screens/scr-1/submit", "", session.ID)

	assert.Equal(t, service.NoticeOrderSendFailed, decodeBody(t, w)["error"])
}

func TestRemoveItemHandler(t *testing.T) {
	t.Run("asks for confirmation", func(t *testing.T) {
		f := newFixture(t)
		session := f.signIn(domain.RoleWaiter)
		f.orders.On("RemoveExistingItem", mock.Anything, session, "scr-1", 5, false).
			Return(nil, service.ErrConfirmationRequired).Once()

		w := f.do("DELETE", "/api/screens/scr-1/items/5", "", session.ID)

		assert.Equal(t, http.StatusConflict, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["confirm"])
		assert.Equal(t, service.ConfirmRemoveItem, body["error"])
	})

	t.Run("confirmed", func(t *testing.T) {
		f := newFixture(t)
		session := f.signIn(domain.RoleWaiter)
		f.orders.On("RemoveExistingItem", mock.Anything, session, "scr-1", 5, true).
			Return(&service.ItemRemoval{Order: &domain.Order{ID: 8}, Message: service.NoticeItemRemoved}, nil).Once()

		w := f.do("DELETE", "/api/screens/scr-1/items/5?confirm=true", "", session.ID)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, service.NoticeItemRemoved, decodeBody(t, w)["message"])
	})

	t.Run("bad item id", func(t *testing.T) {
		f := newFixture(t)
		session := f.signIn(domain.RoleWaiter)

		w := f.do("DELETE", "/api/screens/scr-1/items/abc", "", session.ID)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartHandlers(t *testing.T) {
	f := newFixture(t)
	session := f.signIn(domain.RoleWaiter)
	f.orders.On("AddToCart", mock.Anything, session, "scr-1", 2).
		Return(&service.CartView{ScreenID: "scr-1", Subtotal: 5000}, nil).Once()

	w := f.do("POST", "/api/screens/scr-1/cart", `{"food_id":2,"name":"Es Teh","price":1}`, session.ID)
	assert.Equal(t, http.StatusOK, w.Code)

	session = f.signIn(domain.RoleWaiter)
	f.orders.On("AddToCart", mock.Anything, session, "scr-1", 99).
		Return(nil, &service.OperationError{Notice: service.NoticeFoodNotFound, Err: apiclient.ErrNotFound}).Once()

	w = f.do("POST", "/api/screens/scr-1/cart", `{"food_id":99}`, session.ID)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, service.NoticeFoodNotFound, decodeBody(t, w)["error"])

	session = f.signIn(domain.RoleWaiter)
	f.orders.On("RemoveFromCart", session, "scr-1", 2, true).
		Return(&service.CartView{ScreenID: "scr-1"}, nil).Once()

	w = f.do("DELETE", "/api/screens/scr-1/cart/2?all=true", "", session.ID)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOpenScreenHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "opened", wantCode: http.StatusCreated},
		{name: "table missing", err: &service.OperationError{Notice: service.NoticeTableNotFound, Err: apiclient.ErrNotFound}, wantCode: http.StatusNotFound},
		{name: "no target", err: domain.ValidationErrors{"table_id": "Meja atau pesanan wajib dipilih"}, wantCode: http.StatusUnprocessableEntity},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			session := f.signIn(domain.RoleWaiter)
			var view *service.ScreenView
			if testCase.err == nil {
				view = &service.ScreenView{ID: "scr-9", TableID: 4}
			}
			f.orders.On("OpenScreen", mock.Anything, session, service.OpenScreenRequest{TableID: 4}).Return(view, testCase.err).Once()

			w := f.do("POST", "/api/screens", `{"table_id":4}`, session.ID)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestScreenNotFound(t *testing.T) {
	f := newFixture(t)
	session := f.signIn(domain.RoleWaiter)
	f.orders.On("View", mock.Anything, session, "gone").Return(nil, service.ErrScreenNotFound).Once()

	w := f.do("GET", "/api/screens/gone", "", session.ID)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "/table", decodeBody(t, w)["redirect"])
}

func TestGetOrderNotFoundRedirects(t *testing.T) {
	f := newFixture(t)
	session := f.signIn(domain.RoleCashier)
	f.catalog.On("GetOrder", mock.Anything, session, 99).
		Return(nil, &service.OperationError{Notice: service.NoticeOrderNotFound, Err: apiclient.ErrNotFound}).Once()

	w := f.do("GET", "/api/orders/99", "", session.ID)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, service.NoticeOrderNotFound, body["error"])
	assert.Equal(t, "/orders", body["redirect"])
}

func TestCloseOrderHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantAmount string
	}{
		{name: "numeric amount", body: `{"payment_amount":100000,"payment_method":"cash"}`, wantAmount: "100000"},
		{name: "string amount", body: `{"payment_amount":"100000","payment_method":"cash"}`, wantAmount: "100000"},
		{name: "missing amount", body: `{"payment_method":"cash"}`, wantAmount: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			session := f.signIn(domain.RoleCashier)
			form := service.PaymentForm{Amount: testCase.wantAmount, Method: domain.PaymentCash}
			f.checkout.On("Close", mock.Anything, session, 12, form).
				Return(&service.CloseResult{Message: service.NoticeOrderClosed}, nil).Once()

			w := f.do("POST", "/api/orders/12/close", testCase.body, session.ID)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, service.NoticeOrderClosed, decodeBody(t, w)["message"])
		})
	}
}

func TestCloseOrderHandler_ValidationErrors(t *testing.T) {
	f := newFixture(t)
	session := f.signIn(domain.RoleCashier)
	verrs := domain.ValidationErrors{"payment_amount": "Jumlah pembayaran kurang dari total"}
	f.checkout.On("Close", mock.Anything, session, 12, mock.Anything).Return(nil, verrs).Once()

	w := f.do("POST", "/api/orders/12/close", `{"payment_amount":"1000","payment_method":"cash"}`, session.ID)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := decodeBody(t, w)["errors"].(map[string]interface{})
	assert.Equal(t, "Jumlah pembayaran kurang dari total", errs["payment_amount"])
}

func TestQuoteHandler(t *testing.T) {
	f := newFixture(t)
	session := f.signIn(domain.RoleCashier)
	form := service.PaymentForm{Amount: "50000", Method: domain.PaymentQRIS}
	f.checkout.On("Quote", mock.Anything, session, 12, form).
		Return(&service.Quote{OrderID: 12, Total: 45000, Amount: 50000, Change: 5000, Valid: true}, nil).Once()

	w := f.do("GET", "/api/orders/12/checkout?amount=50000&method=qris", "", session.ID)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReceiptHandler(t *testing.T) {
	doc := &receipt.Document{
		OrderID: 12,
		Header:  []string{receipt.BusinessName},
		Total:   "Rp 75.000",
		Footer:  []string{"Terima Kasih"},
	}
	tests := []struct {
		format      string
		wantCode    int
		contentType string
	}{
		{format: "text", wantCode: http.StatusOK, contentType: "text/plain; charset=utf-8"},
		{format: "qr", wantCode: http.StatusOK, contentType: "image/png"},
		{format: "html", wantCode: http.StatusOK, contentType: "text/html; charset=utf-8"},
		{format: "pdf", wantCode: http.StatusBadRequest},
		{format: "docx", wantCode: http.StatusBadRequest},
	}

	for _, testCase := range tests {
		t.Run(testCase.format, func(t *testing.T) {
			f := newFixture(t)
			session := f.signIn(domain.RoleCashier)
			f.checkout.On("Receipt", mock.Anything, session, 12).Return(doc, nil).Once()

			w := f.do("GET", fmt.Sprintf("/api/orders/12/receipt?format=%s", testCase.format), "", session.ID)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.contentType != "" {
				assert.Equal(t, testCase.contentType, w.Header().Get("Content-Type"))
			}
		})
	}
}

func TestReceiptHandler_OpenOrder(t *testing.T) {
	f := newFixture(t)
	session := f.signIn(domain.RoleCashier)
	f.checkout.On("Receipt", mock.Anything, session, 12).Return(nil, service.ErrOrderNotClosed).Once()

	w := f.do("GET", "/api/orders/12/receipt", "", session.ID)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateTableStatusHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "updated", wantCode: http.StatusOK},
		{name: "occupied", err: service.ErrTableOccupied, wantCode: http.StatusConflict},
		{name: "unchanged", err: service.ErrTableStatusUnchanged, wantCode: http.StatusConflict},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			session := f.signIn(domain.RoleAdmin)
			req := domain.UpdateTableStatusRequest{Status: domain.TableReserved}
			var table *domain.Table
			if testCase.err == nil {
				table = &domain.Table{ID: 3, Status: domain.TableReserved}
			}
			f.catalog.On("UpdateTableStatus", mock.Anything, session, 3, req).Return(table, testCase.err).Once()

			w := f.do("PUT", "/api/tables/3", `{"status":"reserved"}`, session.ID)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.err == nil {
				assert.Equal(t, service.NoticeTableUpdated, decodeBody(t, w)["message"])
			}
		})
	}
}

func TestListFoodsHandler(t *testing.T) {
	f := newFixture(t)
	session := f.signIn(domain.RoleWaiter)
	q := domain.FoodQuery{Category: "beverage", Page: 2, PerPage: 10}
	f.catalog.On("ListFoods", mock.Anything, session, q, "teh").
		Return(&domain.Page[domain.Food]{Data: []domain.Food{{ID: 2, Name: "Es Teh"}}}, nil).Once()

	w := f.do("GET", "/api/foods?category=beverage&page=2&per_page=10&q=teh", "", session.ID)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogoutHandler(t *testing.T) {
	f := newFixture(t)
	session := f.signIn(domain.RoleWaiter)
	f.auth.On("Logout", mock.Anything, session.ID).Return(nil).Once()
	f.orders.On("DropSession", session.ID).Return().Once()

	w := f.do("POST", "/api/auth/logout", "", session.ID)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
