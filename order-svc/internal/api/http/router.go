package httpapi

import (
	"net/http"

	"foodcart/logging"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func NewRouter(handler *Handler, log logrus.FieldLogger) http.Handler {
	r := mux.NewRouter()
	r.Use(logging.Middleware(log))
	handler.RegisterRoutes(r)
	return cors.Default().Handler(r)
}
