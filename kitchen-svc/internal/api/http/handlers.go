package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"restopos/kitchen-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

// Handler serves the kitchen display. It only reads; tickets arrive through
// the consumer.
type Handler struct {
	Board service.BoardInterface
	log   logrus.FieldLogger
}

func NewHandler(board service.BoardInterface, log logrus.FieldLogger) *Handler {
	return &Handler{Board: board, log: log}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/kitchen/pending", h.pending).Methods("GET")
	r.HandleFunc("/api/kitchen/tables/{id}/tickets", h.tickets).Methods("GET")
}

func NewRouter(handler *Handler, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet},
	}).Handler(r)
}

func StartServer(addr string, handler http.Handler, log logrus.FieldLogger) {
	log.Infof("Kitchen display starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "kitchen-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) pending(w http.ResponseWriter, r *http.Request) {
	pending, err := h.Board.Pending(r.Context())
	if err != nil {
		h.log.WithError(err).Error("Failed to read pending tables")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal memuat antrean dapur"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": pending})
}

func (h *Handler) tickets(w http.ResponseWriter, r *http.Request) {
	tableID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || tableID <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "ID meja tidak valid"})
		return
	}
	queue, err := h.Board.Queue(r.Context(), tableID)
	if err != nil {
		h.log.WithError(err).WithField("table_id", tableID).Error("Failed to read table queue")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Gagal memuat antrean dapur"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": queue})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
