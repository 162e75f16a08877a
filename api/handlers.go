package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pricing-dashboard/models"
	"pricing-dashboard/services"
	"pricing-dashboard/utils"
)

// Handler serves the dashboard endpoints from a shared Engine.
type Handler struct {
	engine *services.Engine
	cfg    RouterConfig
	logger *utils.Logger
}

func NewHandler(engine *services.Engine, cfg RouterConfig, logger *utils.Logger) *Handler {
	return &Handler{engine: engine, cfg: cfg, logger: logger.With("component", "api")}
}

// DataResponse is the envelope of GET /api/data.
type DataResponse struct {
	Success bool                         `json:"success"`
	Data    []*models.ProductObservation `json:"data"`
	Count   int                          `json:"count"`
}

// GroupDTO is a product group as shown in the grid.
type GroupDTO struct {
	models.ProductGroup
	ImageURL string `json:"image_url"`
}

// GroupsResponse is the envelope of GET /api/groups.
type GroupsResponse struct {
	Groups []GroupDTO `json:"groups"`
	Count  int        `json:"count"`
}

// GroupDetailResponse is the envelope of GET /api/groups/{key}.
type GroupDetailResponse struct {
	Group    GroupDTO             `json:"group"`
	Analysis models.GroupAnalysis `json:"analysis"`
}

// PricesResponse is the envelope of GET /api/prices.
type PricesResponse struct {
	Points []models.PricePoint `json:"points"`
	Count  int                 `json:"count"`
}

// Data handles GET /api/data: the validated catalog, filtered.
func (h *Handler) Data(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filter(w, r)
	if !ok {
		return
	}
	data := h.engine.Filter(f)
	if data == nil {
		data = []*models.ProductObservation{}
	}
	h.writeJSON(w, http.StatusOK, DataResponse{Success: true, Data: data, Count: len(data)})
}

// Overview handles GET /api/overview.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filter(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, h.engine.Overview(f))
}

// FilterOptions handles GET /api/filters.
func (h *Handler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.engine.FilterOptions())
}

// Groups handles GET /api/groups.
func (h *Handler) Groups(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filter(w, r)
	if !ok {
		return
	}
	sortKey, err := models.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid sort", err.Error())
		return
	}

	groups := h.engine.Groups(f, sortKey)
	resp := GroupsResponse{Groups: make([]GroupDTO, 0, len(groups)), Count: len(groups)}
	for _, g := range groups {
		resp.Groups = append(resp.Groups, h.groupDTO(g))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// Group handles GET /api/groups/{key}.
func (h *Handler) Group(w http.ResponseWriter, r *http.Request) {
	key, err := url.PathUnescape(chi.URLParam(r, "key"))
	if err != nil || key == "" {
		h.writeError(w, http.StatusBadRequest, "invalid group key", "")
		return
	}
	f, ok := h.filter(w, r)
	if !ok {
		return
	}

	g, analysis, err := h.engine.Group(key, f)
	if errors.Is(err, services.ErrGroupNotFound) {
		h.writeError(w, http.StatusNotFound, "group not found", key)
		return
	}
	if err != nil {
		h.logger.Error("[api] group %q: %v", key, err)
		h.writeError(w, http.StatusInternalServerError, "group lookup failed", err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, GroupDetailResponse{Group: h.groupDTO(g), Analysis: analysis})
}

// Map handles GET /api/map.
func (h *Handler) Map(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filter(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, h.engine.Map(f))
}

// Prices handles GET /api/prices.
func (h *Handler) Prices(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filter(w, r)
	if !ok {
		return
	}

	limit := h.cfg.PriceChartLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.writeError(w, http.StatusBadRequest, "invalid limit", raw)
			return
		}
		limit = n
	}

	points := h.engine.PricePoints(f, limit)
	h.writeJSON(w, http.StatusOK, PricesResponse{Points: points, Count: len(points)})
}

func (h *Handler) groupDTO(g models.ProductGroup) GroupDTO {
	dto := GroupDTO{ProductGroup: g}
	if g.Representative != nil {
		dto.ImageURL = services.ImageURL(h.cfg.ImageBaseURL, g.Representative.ImageRef)
	}
	return dto
}

// filter parses the filter query parameters, writing a 400 response and
// returning false when one is invalid.
func (h *Handler) filter(w http.ResponseWriter, r *http.Request) (models.Filter, bool) {
	f, err := ParseFilter(r.URL.Query())
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return models.Filter{}, false
	}
	return f, true
}

// ParseFilter builds a Filter from the category, state, market, price and q
// query parameters.
func ParseFilter(q url.Values) (models.Filter, error) {
	band, err := models.ParsePriceBand(q.Get("price"))
	if err != nil {
		return models.Filter{}, err
	}
	return models.Filter{
		Category:  models.Category(q.Get("category")),
		State:     q.Get("state"),
		Retailer:  q.Get("market"),
		PriceBand: band,
		Query:     q.Get("q"),
	}, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("[api] encode response: %v", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message, detail string) {
	resp := map[string]string{"error": message}
	if detail != "" {
		resp["detail"] = detail
	}
	h.writeJSON(w, status, resp)
}
