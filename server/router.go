package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// WidgetHandler serves the widget endpoints.
type WidgetHandler interface {
	GetWidget(w http.ResponseWriter, r *http.Request)
	GetMenu(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	widgetHandler WidgetHandler
	router        *mux.Router
	logger        *zap.Logger
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	widgetHandler WidgetHandler,
	router *mux.Router,
	logger *zap.Logger) *Router {
	return &Router{
		widgetHandler: widgetHandler,
		router:        router,
		logger:        logger,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(requestIDMiddleware(r.logger))

	// expects ?config={index(int)}&format={json|text}
	r.router.HandleFunc("/v1/widget", r.widgetHandler.GetWidget).Methods("GET")
	// expects ?config={index(int)}
	r.router.HandleFunc("/v1/menu", r.widgetHandler.GetMenu).Methods("GET")

	r.router.HandleFunc("/ping", r.widgetHandler.Ping).Methods("GET")
}
