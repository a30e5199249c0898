package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/applock-backend/internal/models"
)

// CatalogLister defines the interface that the service must implement.
type CatalogLister interface {
	ListApps(ctx context.Context) []models.CatalogApp
}

// NewMockAppsHandler returns an HTTP handler serving the fixed app catalog.
// @Summary List well-known apps
// @Description Returns the fixed 20-entry catalog used to populate the app selection UI. Deterministic; nothing is persisted.
// @Tags catalog
// @Produce json
// @Success 200 {array} models.CatalogApp "App catalog"
// @Router /mock-apps [get]
func NewMockAppsHandler(svc CatalogLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		apps := svc.ListApps(r.Context())

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(apps)
	}
}
