package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/homeledger/backend/internal/httputil"
	"github.com/homeledger/backend/internal/models"
	"golang.org/x/exp/slices"
)

func RegisterHouseholdRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsHouseholds)
		r.GET("", GetHouseholds)
		r.POST("", CreateHouseholds)
	}
	{
		r.OPTIONS("/:id", OptionsHouseholdDetail)
		r.GET("/:id", GetHousehold)
		r.PATCH("/:id", UpdateHousehold)
		r.DELETE("/:id", DeleteHousehold)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Households
// @Success		204
// @Router			/v1/households [options]
func OptionsHouseholds(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Households
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/households/{id} [options]
func OptionsHouseholdDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Household{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create households
// @Description	Creates new households
// @Tags			Households
// @Produce		json
// @Success		201			{object}	HouseholdCreateResponse
// @Failure		400			{object}	HouseholdCreateResponse
// @Failure		500			{object}	HouseholdCreateResponse
// @Param			households	body		[]HouseholdEditable	true	"Households"
// @Router			/v1/households [post]
func CreateHouseholds(c *gin.Context) {
	var households []HouseholdEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &households)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HouseholdCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := HouseholdCreateResponse{}

	for _, create := range households {
		household := create.model()
		err = models.DB.Create(&household).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newHousehold(c, household)
		r.Data = append(r.Data, HouseholdResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get households
// @Description	Returns a list of households
// @Tags			Households
// @Produce		json
// @Success		200	{object}	HouseholdListResponse
// @Failure		400	{object}	HouseholdListResponse
// @Failure		500	{object}	HouseholdListResponse
// @Router			/v1/households [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			note	query	string	false	"Filter by note"
// @Param			search	query	string	false	"Search for this text in name and note"
// @Param			offset	query	uint	false	"The offset of the first household returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of households to return. Defaults to 50."
func GetHouseholds(c *gin.Context) {
	var filter HouseholdQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, HouseholdListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HouseholdListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("households.name ASC").
		Where(&where, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 households and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var households []models.Household
	err = q.Find(&households).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HouseholdListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HouseholdListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Household, 0, len(households))
	for _, household := range households {
		data = append(data, newHousehold(c, household))
	}

	c.JSON(http.StatusOK, HouseholdListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get household
// @Description	Returns a specific household
// @Tags			Households
// @Produce		json
// @Success		200	{object}	HouseholdResponse
// @Failure		400	{object}	HouseholdResponse
// @Failure		404	{object}	HouseholdResponse
// @Failure		500	{object}	HouseholdResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/households/{id} [get]
func GetHousehold(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HouseholdResponse{
			Error: &e,
		})
		return
	}

	var household models.Household
	err = models.DB.First(&household, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HouseholdResponse{
			Error: &e,
		})
		return
	}

	apiResource := newHousehold(c, household)
	c.JSON(http.StatusOK, HouseholdResponse{Data: &apiResource})
}

// @Summary		Update household
// @Description	Updates an existing household. Only values to be updated need to be specified.
// @Tags			Households
// @Accept			json
// @Produce		json
// @Success		200			{object}	HouseholdResponse
// @Failure		400			{object}	HouseholdResponse
// @Failure		404			{object}	HouseholdResponse
// @Failure		500			{object}	HouseholdResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			household	body		HouseholdEditable	true	"Household"
// @Router			/v1/households/{id} [patch]
func UpdateHousehold(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HouseholdResponse{
			Error: &e,
		})
		return
	}

	var household models.Household
	err = models.DB.First(&household, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HouseholdResponse{
			Error: &e,
		})
		return
	}

	err = canModify(c, household.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HouseholdResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, HouseholdEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HouseholdResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data HouseholdEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HouseholdResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&household).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HouseholdResponse{
			Error: &e,
		})
		return
	}

	apiResource := newHousehold(c, household)
	c.JSON(http.StatusOK, HouseholdResponse{Data: &apiResource})
}

// @Summary		Delete household
// @Description	Deletes a household
// @Tags			Households
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/households/{id} [delete]
func DeleteHousehold(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var household models.Household
	err = models.DB.First(&household, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = canModify(c, household.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&household).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
