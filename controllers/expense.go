// controllers/expense.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servispro-backend/services"
	"servispro-backend/utils"
)

type ExpenseController struct {
	expenses *services.ExpenseService
	query    *services.Query
}

func NewExpenseController(expenses *services.ExpenseService, query *services.Query) *ExpenseController {
	return &ExpenseController{expenses: expenses, query: query}
}

func (ec *ExpenseController) List(c *gin.Context) {
	criteria := services.ExpenseCriteria{
		Type:      c.Query("type"),
		Status:    c.Query("status"),
		DateRange: c.Query("dateRange"),
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

	expenses, err := ec.query.Expenses(criteria)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (ec *ExpenseController) Get(c *gin.Context) {
	expense, err := ec.expenses.Get(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

func (ec *ExpenseController) Create(c *gin.Context) {
	var input services.CreateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	expense, err := ec.expenses.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func (ec *ExpenseController) Update(c *gin.Context) {
	var input services.UpdateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	expense, err := ec.expenses.Update(c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

func (ec *ExpenseController) Delete(c *gin.Context) {
	if err := ec.expenses.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
