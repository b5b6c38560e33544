package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"canteen-widget/config"
	"canteen-widget/models"
	"canteen-widget/render"
	services "canteen-widget/service"

	"go.uber.org/zap"
)

const (
	CONFIG_QUERY_ARG = "config"
	FORMAT_QUERY_ARG = "format"
	FORMAT_TEXT      = "text"
)

type WidgetHandler struct {
	widgetService *services.WidgetService
	configs       []models.WidgetConfig
	logger        *zap.Logger
}

func NewWidgetHandler(widgetService *services.WidgetService, configs []models.WidgetConfig, logger *zap.Logger) *WidgetHandler {
	return &WidgetHandler{widgetService: widgetService, configs: configs, logger: logger}
}

// GetWidget renders the widget of ?config={index}, as JSON or with ?format=text as plain text.
// Data failures still answer 200 with the error widget.
func (h *WidgetHandler) GetWidget(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.resolveConfig(w, r)
	if !ok {
		return
	}

	widget := h.widgetService.BuildWidget(r.Context(), cfg)

	if r.URL.Query().Get(FORMAT_QUERY_ARG) == FORMAT_TEXT {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if err := render.WriteText(w, widget); err != nil {
			h.logger.Error("[WidgetHandler] Error writing response", zap.Error(err))
		}
		return
	}
	h.writeJSON(w, http.StatusOK, widget)
}

// GetMenu returns the extracted menu of ?config={index}.
func (h *WidgetHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.resolveConfig(w, r)
	if !ok {
		return
	}

	daily, err := h.widgetService.BuildMenuView(r.Context(), cfg)
	if errors.Is(err, services.ErrNoMenuData) {
		h.logger.Warn("[WidgetHandler] No menu data", zap.Error(err))
		http.Error(w, "Menu data unavailable", http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		h.logger.Error("[WidgetHandler] Error building menu", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, daily)
}

func (h *WidgetHandler) Ping(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *WidgetHandler) resolveConfig(w http.ResponseWriter, r *http.Request) (models.WidgetConfig, bool) {
	cfg, index, err := config.ResolveWidgetConfig(h.configs, r.URL.Query().Get(CONFIG_QUERY_ARG))
	if err != nil {
		h.logger.Error("[WidgetHandler] No widget config available", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return models.WidgetConfig{}, false
	}
	h.logger.Debug("[WidgetHandler] Resolved widget config", zap.Int("index", index))
	return cfg, true
}

func (h *WidgetHandler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("[WidgetHandler] Error encoding response", zap.Error(err))
	}
}
