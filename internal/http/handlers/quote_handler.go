// README: Quote handlers for estimate/advisories and the port-change selection check.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"charterquote/internal/modules/pricing"
	"charterquote/internal/modules/quote"
)

type QuoteHandler struct {
	quote *quote.Service
}

func NewQuoteHandler(svc *quote.Service) *QuoteHandler {
	return &QuoteHandler{quote: svc}
}

type quoteReq struct {
	PortID        string `json:"port_id"`
	VesselClass   string `json:"vessel_class"`
	Passengers    *int   `json:"passengers"`
	SailDate      string `json:"sail_date"`
	TravelStyleID string `json:"travel_style_id"`
}

type quoteResp struct {
	Estimate      int64             `json:"estimate"`
	Currency      string            `json:"currency"`
	Advisories    []string          `json:"advisories"`
	TravelStyleID string            `json:"travel_style_id"`
	Breakdown     pricing.Breakdown `json:"breakdown"`
}

// Create handles POST /api/quotes.
func (h *QuoteHandler) Create(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.PortID = strings.TrimSpace(req.PortID)
	if req.PortID == "" || req.Passengers == nil {
		writeError(c, http.StatusBadRequest, "missing port_id or passengers")
		return
	}

	res, err := h.quote.Quote(c.Request.Context(), quote.Request{
		PortID:        req.PortID,
		VesselClass:   strings.TrimSpace(req.VesselClass),
		Passengers:    *req.Passengers,
		SailDate:      strings.TrimSpace(req.SailDate),
		TravelStyleID: strings.TrimSpace(req.TravelStyleID),
	})
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, quoteResp{
		Estimate:      res.Estimate.Amount,
		Currency:      res.Estimate.Currency,
		Advisories:    res.Advisories,
		TravelStyleID: res.TravelStyleID,
		Breakdown:     res.Breakdown,
	})
}

type reconcileReq struct {
	PortID      string `json:"port_id"`
	VesselClass string `json:"vessel_class"`
}

// Reconcile handles POST /api/selection/reconcile, called after every port change.
func (h *QuoteHandler) Reconcile(c *gin.Context) {
	var req reconcileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	sel, err := h.quote.Reconcile(strings.TrimSpace(req.PortID), req.VesselClass)
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"port_id":      sel.PortID,
		"vessel_class": sel.VesselClass,
		"allowed":      sel.Allowed,
		"changed":      sel.VesselClass != req.VesselClass,
	})
}
