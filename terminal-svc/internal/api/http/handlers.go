package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"restopos/terminal-svc/internal/domain"
	"restopos/terminal-svc/internal/receipt"
	"restopos/terminal-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const SessionHeader = "X-Session-ID"

type ReceiptRenderer interface {
	Render(ctx context.Context, doc receipt.Document, format string) ([]byte, string, error)
}

type Handler struct {
	Auth     service.AuthServiceInterface
	Catalog  service.CatalogServiceInterface
	Orders   service.OrderServiceInterface
	Checkout service.CheckoutServiceInterface
	Receipts ReceiptRenderer
	log      logrus.FieldLogger
}

func NewHandler(auth service.AuthServiceInterface, catalog service.CatalogServiceInterface, orders service.OrderServiceInterface, checkout service.CheckoutServiceInterface, receipts ReceiptRenderer, log logrus.FieldLogger) *Handler {
	return &Handler{
		Auth:     auth,
		Catalog:  catalog,
		Orders:   orders,
		Checkout: checkout,
		Receipts: receipts,
		log:      log,
	}
}

type sessionHandler func(w http.ResponseWriter, r *http.Request, session *domain.Session)

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/auth/register", h.register).Methods("POST")
	r.HandleFunc("/api/auth/logout", h.authed(h.logout)).Methods("POST")
	r.HandleFunc("/api/me", h.authed(h.me)).Methods("GET")

	r.HandleFunc("/api/foods", h.authed(h.listFoods)).Methods("GET")
	r.HandleFunc("/api/foods", h.authed(h.createFood)).Methods("POST")
	r.HandleFunc("/api/foods/{id}", h.authed(h.updateFood)).Methods("PUT")
	r.HandleFunc("/api/foods/{id}", h.authed(h.deleteFood)).Methods("DELETE")
	r.HandleFunc("/api/categories", h.authed(h.listCategories)).Methods("GET")

	r.HandleFunc("/api/tables", h.authed(h.listTables)).Methods("GET")
	r.HandleFunc("/api/tables/{id}", h.authed(h.getTable)).Methods("GET")
	r.HandleFunc("/api/tables/{id}", h.authed(h.updateTableStatus)).Methods("PUT")

	r.HandleFunc("/api/orders", h.authed(h.listOrders)).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.authed(h.getOrder)).Methods("GET")
	r.HandleFunc("/api/orders/{id}/checkout", h.authed(h.quote)).Methods("GET")
	r.HandleFunc("/api/orders/{id}/close", h.authed(h.closeOrder)).Methods("POST")
	r.HandleFunc("/api/orders/{id}/receipt", h.authed(h.printReceipt)).Methods("GET")

	r.HandleFunc("/api/screens", h.authed(h.openScreen)).Methods("POST")
	r.HandleFunc("/api/screens/{id}", h.authed(h.viewScreen)).Methods("GET")
	r.HandleFunc("/api/screens/{id}", h.authed(h.closeScreen)).Methods("DELETE")
	r.HandleFunc("/api/screens/{id}/cart", h.authed(h.addToCart)).Methods("POST")
	r.HandleFunc("/api/screens/{id}/cart/{foodId}", h.authed(h.removeFromCart)).Methods("DELETE")
	r.HandleFunc("/api/screens/{id}/submit", h.authed(h.submit)).Methods("POST")
	r.HandleFunc("/api/screens/{id}/items/{itemId}", h.authed(h.removeItem)).Methods("DELETE")
}

// authed resolves the operator session before calling next.
func (h *Handler) authed(next sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(SessionHeader)
		session, err := h.Auth.Resolve(r.Context(), id)
		if err != nil {
			if id != "" && isUnauthorized(err) {
				h.Orders.DropSession(id)
			}
			h.writeError(w, r, nil, err)
			return
		}
		next(w, r, session)
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "terminal-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

type sessionResponse struct {
	SessionID    string      `json:"session_id"`
	User         domain.User `json:"user"`
	Capabilities []string    `json:"capabilities"`
	Screens      []string    `json:"screens"`
	Message      string      `json:"message,omitempty"`
}

func newSessionResponse(session *domain.Session) sessionResponse {
	return sessionResponse{
		SessionID:    session.ID,
		User:         session.User,
		Capabilities: domain.PermissionsFor(session.User.Role).List(),
		Screens:      domain.Screens(session.User.Role),
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if !decode(w, r, &req) {
		return
	}
	session, err := h.Auth.Login(r.Context(), req)
	if err != nil {
		if isUnauthorized(err) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Email atau password salah"})
			return
		}
		h.writeError(w, r, nil, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionResponse(session))
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if !decode(w, r, &req) {
		return
	}
	session, err := h.Auth.Register(r.Context(), req)
	if err != nil {
		h.writeError(w, r, nil, err)
		return
	}
	if session == nil {
		writeJSON(w, http.StatusCreated, map[string]string{"message": "Registrasi berhasil, silakan login", "redirect": "/login"})
		return
	}
	resp := newSessionResponse(session)
	resp.Message = "Registrasi berhasil"
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	h.endSession(r.Context(), session)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	writeJSON(w, http.StatusOK, newSessionResponse(session))
}

func (h *Handler) listFoods(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	q := r.URL.Query()
	query := domain.FoodQuery{
		Category: q.Get("category"),
		Page:     queryInt(q.Get("page")),
		PerPage:  queryInt(q.Get("per_page")),
	}
	page, err := h.Catalog.ListFoods(r.Context(), session, query, q.Get("q"))
	if err != nil {
		h.writeError(w, r, session, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) createFood(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	var req domain.CreateFoodRequest
	if !decode(w, r, &req) {
		return
	}
	food, err := h.Catalog.CreateFood(r.Context(), session, req)
	if err != nil {
		h.writeError(w, r, session, err)
		return
	}
	writeData(w, http.StatusCreated, food, service.NoticeFoodCreated)
}

func (h *Handler) updateFood(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req domain.UpdateFoodRequest
	if !decode(w, r, &req) {
		return
	}
	food, err := h.Catalog.UpdateFood(r.Context(), session, id, req)
	if err != nil {
		h.writeError(w, r, session, err)
		return
	}
	writeData(w, http.StatusOK, food, service.NoticeFoodUpdated)
}

func (h *Handler) deleteFood(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Catalog.DeleteFood(r.Context(), session, id); err != nil {
		h.writeError(w, r, session, err)
		return
	}
	writeData(w, http.StatusOK, nil, service.NoticeFoodDeleted)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	categories, err := h.Catalog.ListCategories(r.Context(), session)
	if err != nil {
		h.writeError(w, r, session, err)
		return
	}
	writeData(w, http.StatusOK, categories, "")
}

func (h *Handler) listTables(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	list, err := h.Catalog.ListTables(r.Context(), session, r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, r, session, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) getTable(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	table, err := h.Catalog.GetTable(r.Context(), session, id)
	if err != nil {
		h.writeError(w, r, session, err)
		return
	}
	writeData(w, http.StatusOK, table, "")
}

func (h *Handler) updateTableStatus(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req domain.UpdateTableStatusRequest
	if !decode(w, r, &req) {
		return
	}
	table, err := h.Catalog.UpdateTableStatus(r.Context(), session, id, req)
	if err != nil {
		h.writeError(w, r, session, err)
		return
	}
	writeData(w, http.StatusOK, table, service.NoticeTableUpdated)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	q := r.URL.Query()
	query := domain.OrderQuery{
		Status:  q.Get("status"),
		Page:    queryInt(q.Get("page")),
		PerPage: queryInt(q.Get("per_page")),
	}
	page, err := h.Catalog.ListOrders(r.Context(), session, query)
	if err != nil {
		h.writeError(w, r, session, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	order, err := h.Catalog.GetOrder(r.Context(), session, id)
	if err != nil {
		h.writeError(w, r, session, err)
		return
	}
	writeData(w, http.StatusOK, order, "")
}

func (h *Handler) quote(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	form := service.PaymentForm{
		Amount: r.URL.Query().Get("amount"),
		Method: domain.PaymentMethod(r.URL.Query().Get("method")),
	}
	quote, err := h.Checkout.Quote(r.Context(), session, id, form)
	if err != nil {
		h.writeError(w, r, session, err)
		return
	}
	writeData(w, http.StatusOK, quote, "")
}

type closeRequest struct {
	Amount json.RawMessage      `json:"payment_amount"`
	Method domain.PaymentMethod `json:"payment_method"`
}

// amountText accepts the amount as a JSON number or string.
func amountText(raw json.RawMessage) string {
	text := strings.TrimSpace(string(raw))
	if text == "null" {
		return ""
	}
	if unquoted, err := strconv.Unquote(text); err == nil {
		return unquoted
	}
	return text
}

func (h *Handler) closeOrder(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req closeRequest
	if !decode(w, r, &req) {
		return
	}
	form := service.PaymentForm{Amount: amountText(req.Amount), Method: req.Method}
	result, err := h.Checkout.Close(r.Context(), session, id, form)
	if err != nil {
		h.writeError(w, r, session, err)
		return
	}
	writeData(w, http.StatusOK, result, result.Message)
}

func (h *Handler) printReceipt(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	doc, err := h.Checkout.Receipt(r.Context(), session, id)
	if err != nil {
		h.writeError(w, r, session, err)
		return
	}
	body, contentType, err := h.Receipts.Render(r.Context(), *doc, r.URL.Query().Get("format"))
	if err != nil {
		h.writeError(w, r, session, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (h *Handler) openScreen(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	var req service.OpenScreenRequest
	if !decode(w, r, &req) {
		return
	}
	view, err := h.Orders.OpenScreen(r.Context(), session, req)
	if err != nil {
		h.writeError(w, r, session, err)
		return
	}
	writeData(w, http.StatusCreated, view, "")
}

func (h *Handler) viewScreen(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	view, err := h.Orders.View(r.Context(), session, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, session, err)
		return
	}
	writeData(w, http.StatusOK, view, "")
}

func (h *Handler) closeScreen(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	if err := h.Orders.CloseScreen(session, mux.Vars(r)["id"]); err != nil {
		h.writeError(w, r, session, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// addToCartRequest carries only the food id; name and price are read from
// the backend.
type addToCartRequest struct {
	FoodID int `json:"food_id"`
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	var req addToCartRequest
	if !decode(w, r, &req) {
		return
	}
	view, err := h.Orders.AddToCart(r.Context(), session, mux.Vars(r)["id"], req.FoodID)
	if err != nil {
		h.writeError(w, r, session, err)
		return
	}
	writeData(w, http.StatusOK, view, "")
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	foodID, ok := pathID(w, r, "foodId")
	if !ok {
		return
	}
	all := r.URL.Query().Get("all") == "true"
	view, err := h.Orders.RemoveFromCart(session, mux.Vars(r)["id"], foodID, all)
	if err != nil {
		h.writeError(w, r, session, err)
		return
	}
	writeData(w, http.StatusOK, view, "")
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	result, err := h.Orders.Submit(r.Context(), session, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, session, err)
		return
	}
	status := http.StatusOK
	if result.Navigate != "" {
		status = http.StatusCreated
	}
	writeJSON(w, status, map[string]interface{}{
		"data":     result.Order,
		"navigate": result.Navigate,
		"message":  result.Message,
	})
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	itemID, ok := pathID(w, r, "itemId")
	if !ok {
		return
	}
	confirmed := r.URL.Query().Get("confirm") == "true"
	removal, err := h.Orders.RemoveExistingItem(r.Context(), session, mux.Vars(r)["id"], itemID, confirmed)
	if err != nil {
		h.writeError(w, r, session, err)
		return
	}
	writeData(w, http.StatusOK, removal.Order, removal.Message)
}

func (h *Handler) endSession(ctx context.Context, session *domain.Session) {
	if err := h.Auth.Logout(ctx, session.ID); err != nil {
		h.log.WithError(err).Warn("Failed to drop session")
	}
	h.Orders.DropSession(session.ID)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, status int, data interface{}, message string) {
	body := map[string]interface{}{"data": data}
	if message != "" {
		body["message"] = message
	}
	writeJSON(w, status, body)
}

func decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Format permintaan tidak valid"})
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "ID tidak valid"})
		return 0, false
	}
	return id, true
}

func queryInt(raw string) int {
	n, _ := strconv.Atoi(raw)
	return n
}
