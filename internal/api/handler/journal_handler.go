package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/corporation/identity-api/internal/api/metrics"
)

// JournalStore is the interface the handler uses to reach the journal file.
type JournalStore interface {
	Append(message string) error
	Read() ([]string, error)
}

// JournalHandler handles the append-only journal endpoints.
type JournalHandler struct {
	store JournalStore
}

func NewJournalHandler(store JournalStore) *JournalHandler {
	return &JournalHandler{store: store}
}

// Write handles POST /journal/write.
//
// @Summary      Write to the journal
// @Tags         journal
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      journalWriteRequest  true  "Journal message"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /journal/write [post]
func (h *JournalHandler) Write(c echo.Context) error {
	var req journalWriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.store.Append(req.Message); err != nil {
		return err
	}

	metrics.JournalWritesTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Message written to the journal successfully"})
}

// Read handles GET /journal/read.
//
// @Summary      Read from the journal
// @Tags         journal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  journalReadResponse
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /journal/read [get]
func (h *JournalHandler) Read(c echo.Context) error {
	messages, err := h.store.Read()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, journalReadResponse{Messages: messages})
}
