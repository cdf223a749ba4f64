package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/homeledger/backend/internal/httputil"
	"github.com/homeledger/backend/internal/models"
)

func RegisterBudgetLineRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/:id", OptionsBudgetLineDetail)
		r.GET("/:id", GetBudgetLine)
		r.PATCH("/:id", UpdateBudgetLine)
		r.DELETE("/:id", DeleteBudgetLine)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BudgetLines
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-lines/{id} [options]
func OptionsBudgetLineDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.BudgetLine{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create budget lines
// @Description	Creates new lines for the budget
// @Tags			Budgets
// @Produce		json
// @Success		201		{object}	BudgetLineCreateResponse
// @Failure		400		{object}	BudgetLineCreateResponse
// @Failure		403		{object}	BudgetLineCreateResponse
// @Failure		404		{object}	BudgetLineCreateResponse
// @Failure		500		{object}	BudgetLineCreateResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			lines	body		[]BudgetLineEditable	true	"Budget lines"
// @Router			/v1/budgets/{id}/lines [post]
func CreateBudgetLines(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLineCreateResponse{
			Error: &e,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLineCreateResponse{
			Error: &e,
		})
		return
	}

	err = canModify(c, budget.HouseholdID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLineCreateResponse{
			Error: &e,
		})
		return
	}

	var lines []BudgetLineEditable
	err = httputil.BindData(c, &lines)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLineCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := BudgetLineCreateResponse{}

	for _, create := range lines {
		line := create.model(budget.ID)
		err = models.DB.Create(&line).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newBudgetLine(c, line)
		r.Data = append(r.Data, BudgetLineResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get budget lines
// @Description	Returns the lines of the budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetLineListResponse
// @Failure		400	{object}	BudgetLineListResponse
// @Failure		403	{object}	BudgetLineListResponse
// @Failure		404	{object}	BudgetLineListResponse
// @Failure		500	{object}	BudgetLineListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/lines [get]
func GetBudgetLines(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLineListResponse{
			Error: &e,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLineListResponse{
			Error: &e,
		})
		return
	}

	err = canView(c, budget.HouseholdID, budget.Shared)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLineListResponse{
			Error: &e,
		})
		return
	}

	lines, err := budget.Lines(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLineListResponse{
			Error: &e,
		})
		return
	}

	data := make([]BudgetLine, 0, len(lines))
	for _, line := range lines {
		data = append(data, newBudgetLine(c, line))
	}

	c.JSON(http.StatusOK, BudgetLineListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  int64(len(data)),
			Offset: 0,
			Limit:  -1,
		},
	})
}

// @Summary		Get budget line
// @Description	Returns a specific budget line
// @Tags			BudgetLines
// @Produce		json
// @Success		200	{object}	BudgetLineResponse
// @Failure		400	{object}	BudgetLineResponse
// @Failure		403	{object}	BudgetLineResponse
// @Failure		404	{object}	BudgetLineResponse
// @Failure		500	{object}	BudgetLineResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-lines/{id} [get]
func GetBudgetLine(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &e,
		})
		return
	}

	var line models.BudgetLine
	err = models.DB.First(&line, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &e,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, line.BudgetID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &e,
		})
		return
	}

	err = canView(c, budget.HouseholdID, budget.Shared)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBudgetLine(c, line)
	c.JSON(http.StatusOK, BudgetLineResponse{Data: &apiResource})
}

// @Summary		Update budget line
// @Description	Updates an existing budget line. Only values to be updated need to be specified.
// @Tags			BudgetLines
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetLineResponse
// @Failure		400		{object}	BudgetLineResponse
// @Failure		403		{object}	BudgetLineResponse
// @Failure		404		{object}	BudgetLineResponse
// @Failure		500		{object}	BudgetLineResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			line	body		BudgetLineEditable	true	"Budget line"
// @Router			/v1/budget-lines/{id} [patch]
func UpdateBudgetLine(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &e,
		})
		return
	}

	var line models.BudgetLine
	err = models.DB.First(&line, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &e,
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, line.BudgetID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &e,
		})
		return
	}

	err = canModify(c, budget.HouseholdID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetLineEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &e,
		})
		return
	}

	var data BudgetLineEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&line).Select("", updateFields...).Updates(data.model(line.BudgetID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBudgetLine(c, line)
	c.JSON(http.StatusOK, BudgetLineResponse{Data: &apiResource})
}

// @Summary		Delete budget line
// @Description	Deletes a budget line
// @Tags			BudgetLines
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-lines/{id} [delete]
func DeleteBudgetLine(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var line models.BudgetLine
	err = models.DB.First(&line, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, line.BudgetID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = canModify(c, budget.HouseholdID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&line).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
