package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/homeledger/backend/internal/httputil"
	"github.com/homeledger/backend/internal/models"
	"golang.org/x/exp/slices"
)

func RegisterMembershipRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsMemberships)
		r.GET("", GetMemberships)
		r.POST("", CreateMemberships)
	}
	{
		r.OPTIONS("/:id", OptionsMembershipDetail)
		r.GET("/:id", GetMembership)
		r.PATCH("/:id", UpdateMembership)
		r.DELETE("/:id", DeleteMembership)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Memberships
// @Success		204
// @Router			/v1/memberships [options]
func OptionsMemberships(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Memberships
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/memberships/{id} [options]
func OptionsMembershipDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Membership{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create memberships
// @Description	Creates new memberships
// @Tags			Memberships
// @Produce		json
// @Success		201			{object}	MembershipCreateResponse
// @Failure		400			{object}	MembershipCreateResponse
// @Failure		403			{object}	MembershipCreateResponse
// @Failure		404			{object}	MembershipCreateResponse
// @Failure		500			{object}	MembershipCreateResponse
// @Param			memberships	body		[]MembershipEditable	true	"Memberships"
// @Router			/v1/memberships [post]
func CreateMemberships(c *gin.Context) {
	var memberships []MembershipEditable

	err := httputil.BindData(c, &memberships)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MembershipCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := MembershipCreateResponse{}

	for _, create := range memberships {
		// Only owners and admins may manage who belongs to a household
		err = canModify(c, create.HouseholdID)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		membership := create.model()
		err = models.DB.Create(&membership).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newMembership(c, membership)
		r.Data = append(r.Data, MembershipResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get memberships
// @Description	Returns a list of memberships
// @Tags			Memberships
// @Produce		json
// @Success		200	{object}	MembershipListResponse
// @Failure		400	{object}	MembershipListResponse
// @Failure		500	{object}	MembershipListResponse
// @Router			/v1/memberships [get]
// @Param			household	query	string	false	"Filter by household ID"
// @Param			user		query	string	false	"Filter by user ID"
// @Param			role		query	string	false	"Filter by role"
// @Param			offset		query	uint	false	"The offset of the first membership returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of memberships to return. Defaults to 50."
func GetMemberships(c *gin.Context) {
	var filter MembershipQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MembershipListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MembershipListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("memberships.created_at ASC").
		Where(&where, queryFields...)

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var memberships []models.Membership
	err = q.Find(&memberships).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MembershipListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MembershipListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Membership, 0, len(memberships))
	for _, membership := range memberships {
		data = append(data, newMembership(c, membership))
	}

	c.JSON(http.StatusOK, MembershipListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get membership
// @Description	Returns a specific membership
// @Tags			Memberships
// @Produce		json
// @Success		200	{object}	MembershipResponse
// @Failure		400	{object}	MembershipResponse
// @Failure		404	{object}	MembershipResponse
// @Failure		500	{object}	MembershipResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/memberships/{id} [get]
func GetMembership(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MembershipResponse{
			Error: &e,
		})
		return
	}

	var membership models.Membership
	err = models.DB.First(&membership, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MembershipResponse{
			Error: &e,
		})
		return
	}

	apiResource := newMembership(c, membership)
	c.JSON(http.StatusOK, MembershipResponse{Data: &apiResource})
}

// @Summary		Update membership
// @Description	Updates an existing membership. Only values to be updated need to be specified.
// @Tags			Memberships
// @Accept			json
// @Produce		json
// @Success		200			{object}	MembershipResponse
// @Failure		400			{object}	MembershipResponse
// @Failure		403			{object}	MembershipResponse
// @Failure		404			{object}	MembershipResponse
// @Failure		500			{object}	MembershipResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			membership	body		MembershipEditable	true	"Membership"
// @Router			/v1/memberships/{id} [patch]
func UpdateMembership(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MembershipResponse{
			Error: &e,
		})
		return
	}

	var membership models.Membership
	err = models.DB.First(&membership, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MembershipResponse{
			Error: &e,
		})
		return
	}

	err = canModify(c, membership.HouseholdID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MembershipResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, MembershipEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MembershipResponse{
			Error: &e,
		})
		return
	}

	var data MembershipEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MembershipResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&membership).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MembershipResponse{
			Error: &e,
		})
		return
	}

	apiResource := newMembership(c, membership)
	c.JSON(http.StatusOK, MembershipResponse{Data: &apiResource})
}

// @Summary		Delete membership
// @Description	Deletes a membership
// @Tags			Memberships
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/memberships/{id} [delete]
func DeleteMembership(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var membership models.Membership
	err = models.DB.First(&membership, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = canModify(c, membership.HouseholdID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&membership).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
