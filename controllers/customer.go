// controllers/customer.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servispro-backend/services"
	"servispro-backend/utils"
)

type CustomerController struct {
	customers *services.CustomerService
	query     *services.Query
}

func NewCustomerController(customers *services.CustomerService, query *services.Query) *CustomerController {
	return &CustomerController{customers: customers, query: query}
}

func (cc *CustomerController) List(c *gin.Context) {
	customers, err := cc.query.Customers(services.CustomerCriteria{
		Keyword: c.Query("keyword"),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (cc *CustomerController) Get(c *gin.Context) {
	customer, err := cc.customers.Get(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Devices lists the repair history of one customer.
func (cc *CustomerController) Devices(c *gin.Context) {
	devices, err := cc.query.Devices(services.DeviceCriteria{
		CustomerID: c.Param("id"),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, devices)
}

func (cc *CustomerController) Create(c *gin.Context) {
	var input services.CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer, err := cc.customers.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (cc *CustomerController) Update(c *gin.Context) {
	var input services.UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer, err := cc.customers.Update(c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (cc *CustomerController) Delete(c *gin.Context) {
	if err := cc.customers.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
