package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/barsilva/bar-erp/internal/application/analytics"
	"github.com/barsilva/bar-erp/internal/application/dto"
	"github.com/barsilva/bar-erp/internal/domain"
)

// DashboardHandler trata o resumo gerencial e o DRE (protegido).
type DashboardHandler struct {
	dashboardUC *analytics.DashboardUseCase
	reportUC    *analytics.ReportUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(dashboardUC *analytics.DashboardUseCase, reportUC *analytics.ReportUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC, reportUC: reportUC}
}

// Summary godoc
// @Summary      Resumo do dashboard (DRE, séries, KPIs)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        month  query  string  false  "Mês de referência YYYY-MM (default: corrente)"
// @Param        scope  query  string  false  "Janela do breakdown: MONTH ou YEAR"  default(MONTH)
// @Success      200    {object}  dto.DashboardSummaryResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	month := c.Query("month")
	scope := c.Query("scope")

	out, err := h.dashboardUC.Summary(month, scope)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month deve ser YYYY-MM e scope MONTH ou YEAR"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DREPDF godoc
// @Summary      Download do DRE mensal em PDF
// @Tags         dashboard
// @Security     Bearer
// @Produce      application/pdf
// @Param        month  query  string  false  "Mês YYYY-MM (default: corrente)"
// @Success      200    {file}  file
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/dashboard/dre/pdf [get]
func (h *DashboardHandler) DREPDF(c *fiber.Ctx) error {
	month := c.Query("month")

	doc, err := h.reportUC.MonthlyDRE(month)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month deve ser YYYY-MM"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	filename := fmt.Sprintf("dre-%s.pdf", month)
	if month == "" {
		filename = "dre.pdf"
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(doc)
}
