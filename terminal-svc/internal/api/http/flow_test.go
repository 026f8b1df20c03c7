package httpapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	httpapi "restopos/terminal-svc/internal/api/http"
	"restopos/terminal-svc/internal/apiclient"
	"restopos/terminal-svc/internal/domain"
	"restopos/terminal-svc/internal/mocks"
	"restopos/terminal-svc/internal/receipt"
	"restopos/terminal-svc/internal/service"
	"restopos/terminal-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs []kafka.Message
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return nil
}

// fakeBackend serves the subset of the restaurant API the ordering flow uses.
type fakeBackend struct {
	rejectTokens atomic.Bool
	created      atomic.Int32
}

func (b *fakeBackend) handler() http.Handler {
	r := mux.NewRouter()
	reply := func(w http.ResponseWriter, status int, data interface{}) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]interface{}{"data": data})
	}
	authed := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if b.rejectTokens.Load() || r.Header.Get("Authorization") != "Bearer 5|kasir" {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"message": "Unauthenticated."})
				return
			}
			next(w, r)
		}
	}

	r.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, domain.AuthResponse{
			Token: "5|kasir",
			User:  domain.User{ID: 5, Name: "Sari", Email: "sari@resto.id", Role: domain.RoleWaiter},
		})
	}).Methods("POST")
	r.HandleFunc("/api/tables/4", authed(func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, domain.Table{ID: 4, Name: "Meja 4", Status: domain.TableAvailable, Capacity: 4})
	})).Methods("GET")
	r.HandleFunc("/api/foods/7", authed(func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, domain.Food{ID: 7, Name: "Soto Ayam", Category: domain.CategoryMainCourse, Price: 25000})
	})).Methods("GET")
	r.HandleFunc("/api/orders", authed(func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateOrderRequest
		json.NewDecoder(r.Body).Decode(&req)
		b.created.Add(1)
		items := make([]domain.OrderItem, 0, len(req.Items))
		for i, item := range req.Items {
			items = append(items, domain.OrderItem{ID: i + 1, FoodID: item.FoodID, Quantity: item.Quantity, PriceAtTime: 25000})
		}
		reply(w, http.StatusCreated, domain.Order{ID: 41, TableID: req.TableID, Items: items, Status: domain.OrderOpen})
	})).Methods("POST")
	return r
}

type flow struct {
	backend *fakeBackend
	redis   *miniredis.Miniredis
	events  *recordingWriter
	server  http.Handler
}

func newFlow(t *testing.T) flow {
	backend := &fakeBackend{}
	upstream := httptest.NewServer(backend.handler())
	t.Cleanup(upstream.Close)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	logger, _ := test.NewNullLogger()
	client := apiclient.NewClient(apiclient.Config{BaseURL: upstream.URL}, &http.Client{Timeout: 5 * time.Second}, logger)
	events := &recordingWriter{}
	publisher := storage.NewKafkaPublisher(events)

	catalog := service.NewCatalogService(client, client, client, storage.NewRedisCache(rdb), time.Minute, time.Hour, logger)
	auth := service.NewAuthService(client, storage.NewRedisSessionStore(rdb, time.Hour), logger)
	orders := service.NewOrderService(client, client, client, catalog, publisher, time.Hour, logger)
	checkout := service.NewCheckoutService(client, mocks.NewReceiptJournal(t), publisher, catalog, logger)

	handler := httpapi.NewHandler(auth, catalog, orders, checkout, receipt.NewRenderer(nil, nil), logger)
	return flow{
		backend: backend,
		redis:   mr,
		events:  events,
		server:  httpapi.NewRouter(handler, nil),
	}
}

func (f flow) call(t *testing.T, method, path, body, sessionID string) (int, map[string]interface{}) {
	t.Helper()
	fx := fixture{router: f.server}
	w := fx.do(method, path, body, sessionID)
	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.NewDecoder(w.Body).Decode(&decoded))
	}
	return w.Code, decoded
}

func TestFlow_LoginOrderAndSendToKitchen(t *testing.T) {
	f := newFlow(t)

	code, body := f.call(t, "POST", "/api/auth/login", `{"email":"sari@resto.id","password":"rahasia"}`, "")
	require.Equal(t, http.StatusOK, code)
	sessionID := body["session_id"].(string)

	code, body = f.call(t, "POST", "/api/screens", `{"table_id":4}`, sessionID)
	require.Equal(t, http.StatusCreated, code)
	screenID := body["data"].(map[string]interface{})["id"].(string)

	code, _ = f.call(t, "POST", "/api/screens/"+screenID+"/cart", `{"food_id":7}`, sessionID)
	require.Equal(t, http.StatusOK, code)
	code, body = f.call(t, "POST", "/api/screens/"+screenID+"/cart", `{"food_id":7}`, sessionID)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(50000), body["data"].(map[string]interface{})["subtotal"])

	code, body = f.call(t, "POST", "/api/screens/"+screenID+"/submit", "", sessionID)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "/orders/41", body["navigate"])
	assert.Equal(t, service.NoticeOrderSent, body["message"])
	assert.Equal(t, int32(1), f.backend.created.Load())

	require.Len(t, f.events.msgs, 1)
	var event domain.KitchenEvent
	require.NoError(t, json.Unmarshal(f.events.msgs[0].Value, &event))
	assert.Equal(t, domain.EventItemsSent, event.Type)
	assert.Equal(t, 4, event.TableID)
	require.Len(t, event.Items, 1)
	assert.Equal(t, 2, event.Items[0].Quantity)
	assert.Equal(t, "Soto Ayam", event.Items[0].Name)

	code, _ = f.call(t, "POST", "/api/screens/"+screenID+"/submit", "", sessionID)
	assert.Equal(t, http.StatusConflict, code)
}

func TestFlow_ExpiredBackendTokenEndsSession(t *testing.T) {
	f := newFlow(t)

	code, body := f.call(t, "POST", "/api/auth/login", `{"email":"sari@resto.id","password":"rahasia"}`, "")
	require.Equal(t, http.StatusOK, code)
	sessionID := body["session_id"].(string)
	require.True(t, f.redis.Exists("restopos:session:"+sessionID))

	f.backend.rejectTokens.Store(true)

	code, body = f.call(t, "POST", "/api/screens", `{"table_id":4}`, sessionID)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "/login", body["redirect"])
	assert.False(t, f.redis.Exists("restopos:session:"+sessionID))

	code, _ = f.call(t, "GET", "/api/me", "", sessionID)
	assert.Equal(t, http.StatusUnauthorized, code)
}
