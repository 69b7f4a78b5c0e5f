package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/MidnightMuse/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
)

type DashboardHandler struct {
	dashboardUsecase usecasecontract.IDashboardUseCase
}

func NewDashboardHandler(dashboardUsecase usecasecontract.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

// GetStats handles GET /api/dashboard
func (h *DashboardHandler) GetStats(c *gin.Context) {
	requester, _ := middleware.CurrentUser(c)
	stats, err := h.dashboardUsecase.GetStats(c.Request.Context(), requester)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, stats)
}
