// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"charterquote/internal/modules/quote"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeQuoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, quote.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, quote.ErrUnknownPort), errors.Is(err, quote.ErrUnknownStyle):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, quote.ErrVesselNotAllowed):
		writeError(c, http.StatusConflict, err.Error())
	default:
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("quote failed")
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
