// README: Read-only catalog handlers feeding the caller's selection widgets.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"charterquote/internal/modules/catalog"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

type portResp struct {
	catalog.Port
	Multiplier float64  `json:"multiplier"`
	Vessels    []string `json:"vessels"`
}

type styleResp struct {
	catalog.TravelStyle
	Multiplier float64 `json:"multiplier"`
}

// ListPorts handles GET /api/ports.
func (h *CatalogHandler) ListPorts(c *gin.Context) {
	ports := h.catalog.Ports()
	out := make([]portResp, 0, len(ports))
	for _, p := range ports {
		out = append(out, portResp{
			Port:       p,
			Multiplier: h.catalog.PortFactor(p.ID),
			Vessels:    h.catalog.AllowedVessels(p.ID),
		})
	}
	writeJSON(c, http.StatusOK, gin.H{"ports": out})
}

// PortVessels handles GET /api/ports/:id/vessels.
func (h *CatalogHandler) PortVessels(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.catalog.Port(id); !ok {
		writeError(c, http.StatusNotFound, "unknown departure port")
		return
	}
	names := h.catalog.AllowedVessels(id)
	out := make([]catalog.VesselClass, 0, len(names))
	for _, name := range names {
		if v, ok := h.catalog.Vessel(name); ok {
			out = append(out, v)
		}
	}
	writeJSON(c, http.StatusOK, gin.H{"port_id": id, "vessels": out})
}

// ListVessels handles GET /api/vessels.
func (h *CatalogHandler) ListVessels(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"vessels": h.catalog.Vessels()})
}

// ListStyles handles GET /api/styles.
func (h *CatalogHandler) ListStyles(c *gin.Context) {
	styles := h.catalog.Styles()
	out := make([]styleResp, 0, len(styles))
	for _, s := range styles {
		out = append(out, styleResp{TravelStyle: s, Multiplier: h.catalog.StyleFactor(s.ID)})
	}
	writeJSON(c, http.StatusOK, gin.H{"styles": out, "default": h.catalog.DefaultStyle().ID})
}
