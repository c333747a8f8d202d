package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"langham-hms/services"
	"langham-hms/utils"
)

// AllocationController exposes active allocations and the live report.
type AllocationController struct {
	Hotel   *services.HotelService
	Reports *services.ReportService
}

func NewAllocationController(hotel *services.HotelService, reports *services.ReportService) *AllocationController {
	return &AllocationController{Hotel: hotel, Reports: reports}
}

// GET /api/allocations
func (ac *AllocationController) GetAllocations(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ac.Hotel.ListActive())
}

// GET /api/allocations/:room
func (ac *AllocationController) GetAllocation(c *gin.Context) {
	alloc, err := ac.Hotel.FindActiveAllocation(strings.TrimSpace(c.Param("room")))
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, alloc)
}

// GET /api/report renders the report from memory; the file is not touched.
func (ac *AllocationController) GetReport(c *gin.Context) {
	c.Data(http.StatusOK, "text/plain; charset=utf-8", ac.Reports.Render())
}
