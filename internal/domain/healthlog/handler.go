package healthlog

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sicklesense/api/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/logs/hydration-verify/:userId", h.VerifyHydration)
	api.POST("/logs/jaundice-check/:userId", h.CheckJaundice)
	api.GET("/logs/:userId", h.ListEvents)
}

func (h *Handler) VerifyHydration(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	media, mimeType, err := readUpload(c, "video/mp4")
	if err != nil {
		return err
	}

	outcome, err := h.svc.VerifyHydration(c.Request().Context(), userID, media, mimeType)
	if err != nil {
		if errors.Is(err, ErrNotVerified) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, outcome)
}

func (h *Handler) CheckJaundice(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	media, mimeType, err := readUpload(c, "image/jpeg")
	if err != nil {
		return err
	}

	outcome, err := h.svc.CheckJaundice(c.Request().Context(), userID, media, mimeType)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, outcome)
}

func (h *Handler) ListEvents(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListEvents(c.Request().Context(), userID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*HealthEvent{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

// readUpload pulls the multipart "file" field into memory. The content type
// falls back to the intent's default when the client omits it.
func readUpload(c echo.Context, defaultMIME string) ([]byte, string, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	src, err := file.Open()
	if err != nil {
		return nil, "", echo.NewHTTPError(http.StatusInternalServerError, "failed to open uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", echo.NewHTTPError(http.StatusInternalServerError, "failed to read uploaded file")
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = defaultMIME
	}
	return data, mimeType, nil
}
