package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meu-painel/backend/internal/httputil"
	"github.com/meu-painel/backend/internal/models"
	"golang.org/x/exp/slices"
)

func RegisterProfileRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsProfiles)
		r.GET("", GetProfiles)
		r.POST("", CreateProfiles)
	}
	{
		r.OPTIONS("/:id", OptionsProfileDetail)
		r.GET("/:id", GetProfile)
		r.PATCH("/:id", UpdateProfile)
		r.DELETE("/:id", DeleteProfile)
	}
	{
		r.OPTIONS("/:id/analysis", httputil.OptionsGet)
		r.GET("/:id/analysis", GetAnalysis)
		r.OPTIONS("/:id/advice", httputil.OptionsGet)
		r.GET("/:id/advice", GetAdvice)
		r.OPTIONS("/:id/savings-suggestions", httputil.OptionsGetPost)
		r.GET("/:id/savings-suggestions", GetSavingsSuggestions)
		r.POST("/:id/savings-suggestions", ApplySavingsSuggestion)
		r.OPTIONS("/:id/snapshot", httputil.OptionsGet)
		r.GET("/:id/snapshot", GetSnapshot)
		r.OPTIONS("/:id/report", httputil.OptionsGet)
		r.GET("/:id/report", GetReport)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profiles
// @Success		204
// @Router			/v1/profiles [options]
func OptionsProfiles(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profiles
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/profiles/{id} [options]
func OptionsProfileDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Profile{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Create profiles
// @Description	Creates new profiles
// @Tags			Profiles
// @Produce		json
// @Success		201			{object}	ProfileCreateResponse
// @Failure		400			{object}	ProfileCreateResponse
// @Failure		500			{object}	ProfileCreateResponse
// @Param			profiles	body		[]ProfileEditable	true	"Profiles"
// @Router			/v1/profiles [post]
func CreateProfiles(c *gin.Context) {
	var editables []ProfileEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ProfileCreateResponse{}

	for _, create := range editables {
		profile := create.model()
		err = models.DB.Create(&profile).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		persist(profile.ID)

		apiResource := newProfile(c, profile)
		r.Data = append(r.Data, ProfileResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get profiles
// @Description	Returns a list of profiles
// @Tags			Profiles
// @Produce		json
// @Success		200		{object}	ProfileListResponse
// @Failure		400		{object}	ProfileListResponse
// @Failure		500		{object}	ProfileListResponse
// @Param			name	query		string	false	"Filter by name"
// @Param			search	query		string	false	"Search for this text in the name"
// @Param			offset	query		uint	false	"The offset of the first profile returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of profiles to return. Defaults to 50."
// @Router			/v1/profiles [get]
func GetProfiles(c *gin.Context) {
	var filter ProfileQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ProfileListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("profiles.created_at ASC, profiles.rowid ASC")

	if filter.Name != "" {
		q = q.Where("profiles.name = ?", filter.Name)
	}

	if filter.Search != "" {
		q = q.Where("profiles.name LIKE ?", fmt.Sprintf("%%%s%%", filter.Search))
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	limit := defaultLimit
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var profiles []models.Profile
	err := q.Find(&profiles).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Model(&models.Profile{}).Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Profile, 0, len(profiles))
	for _, profile := range profiles {
		data = append(data, newProfile(c, profile))
	}

	c.JSON(http.StatusOK, ProfileListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get profile
// @Description	Returns a specific profile
// @Tags			Profiles
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		400	{object}	ProfileResponse
// @Failure		404	{object}	ProfileResponse
// @Failure		500	{object}	ProfileResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/profiles/{id} [get]
func GetProfile(c *gin.Context) {
	var profile models.Profile
	err := getResource(c, &profile)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	apiResource := newProfile(c, profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &apiResource})
}

// @Summary		Update profile
// @Description	Renames an existing profile
// @Tags			Profiles
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Failure		404		{object}	ProfileResponse
// @Failure		500		{object}	ProfileResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			profile	body		ProfileEditable	true	"Profile"
// @Router			/v1/profiles/{id} [patch]
func UpdateProfile(c *gin.Context) {
	var profile models.Profile
	err := getResource(c, &profile)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, ProfileEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	var data ProfileEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	if slices.Contains(updateFields, "Name") {
		profile.Name = data.Name
	}

	err = models.DB.Save(&profile).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	persist(profile.ID)

	apiResource := newProfile(c, profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &apiResource})
}

// @Summary		Delete profile
// @Description	Deletes a profile with all its transactions and goals
// @Tags			Profiles
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/profiles/{id} [delete]
func DeleteProfile(c *gin.Context) {
	var profile models.Profile
	err := getResource(c, &profile)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&profile).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	forget(profile.ID)
	c.JSON(http.StatusNoContent, nil)
}

