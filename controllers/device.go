// controllers/device.go
package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"servispro-backend/services"
	"servispro-backend/utils"
)

type DeviceController struct {
	devices *services.DeviceService
	query   *services.Query
}

func NewDeviceController(devices *services.DeviceService, query *services.Query) *DeviceController {
	return &DeviceController{devices: devices, query: query}
}

// List returns devices filtered by the query string. Supported params:
// status (repeatable or comma-separated), customerId, keyword,
// remainingPayment=true, dateRange (day|week|month|year), dateFrom, dateTo.
func (dc *DeviceController) List(c *gin.Context) {
	criteria := services.DeviceCriteria{
		CustomerID:               c.Query("customerId"),
		Keyword:                  c.Query("keyword"),
		RemainingPaymentPositive: c.Query("remainingPayment") == "true",
		DateRange:                c.Query("dateRange"),
	}
	for _, s := range c.QueryArray("status") {
		for _, part := range strings.Split(s, ",") {
			if part != "" {
				criteria.Status = append(criteria.Status, part)
			}
		}
	}

	from, err := parseDateParam(c.Query("dateFrom"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid dateFrom")
		return
	}
	to, err := parseDateParam(c.Query("dateTo"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid dateTo")
		return
	}
	criteria.DateFrom, criteria.DateTo = from, to

	devices, err := dc.query.Devices(criteria)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, devices)
}

func (dc *DeviceController) Get(c *gin.Context) {
	device, err := dc.devices.Get(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, device)
}

func (dc *DeviceController) Create(c *gin.Context) {
	var input services.CreateDeviceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	device, err := dc.devices.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, device)
}

func (dc *DeviceController) Update(c *gin.Context) {
	var input services.UpdateDeviceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	device, err := dc.devices.Update(c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, device)
}

func (dc *DeviceController) Delete(c *gin.Context) {
	if err := dc.devices.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Device deleted successfully"})
}
