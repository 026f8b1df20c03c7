package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func NewRouter(handler *Handler, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type", SessionHeader},
		AllowCredentials: true,
	}).Handler(r)
}

func StartServer(addr string, handler http.Handler, log logrus.FieldLogger) {
	log.Infof("Terminal Service starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
