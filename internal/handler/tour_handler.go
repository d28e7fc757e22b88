package handler

import (
	"tourbook/internal/models"
	"tourbook/internal/service"
	"tourbook/pkg/response"

	"github.com/gin-gonic/gin"
)

// TourHandler handles HTTP requests for tour operations.
type TourHandler struct {
	*ResourceHandler[models.Tour]
	service service.TourServicer
	images  *Images
}

// NewTourHandler creates a new TourHandler.
func NewTourHandler(service service.TourServicer, images *Images) *TourHandler {
	return &TourHandler{
		ResourceHandler: NewResourceHandler[models.Tour](
			service,
			func() models.Creatable[models.Tour] { return &models.CreateTourRequest{} },
			func() models.Patch { return &models.UpdateTourRequest{} },
		),
		service: service,
		images:  images,
	}
}

// AliasTopTours presets the query of the five best cheap tours.
func AliasTopTours(c *gin.Context) {
	q := c.Request.URL.Query()
	q.Set("limit", "5")
	q.Set("sort", "-ratingsAverage,price")
	q.Set("fields", "name,price,ratingsAverage,summary,difficulty")
	c.Request.URL.RawQuery = q.Encode()
	c.Next()
}

// UpdateOne godoc
// @Summary      Update tour
// @Description  Partially update a tour. Multipart requests may carry an "imageCover" file and up to three "images" files.
// @Tags         tours
// @Accept       json,mpfd
// @Produce      json
// @Param        id       path      string                    true  "Tour ID"
// @Param        request  body      models.UpdateTourRequest  true  "Tour changes"
// @Success      200      {object}  response.Response{data=response.Payload{data=models.Tour}}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Security     BearerAuth
// @Router       /tours/{id} [patch]
func (h *TourHandler) UpdateOne(c *gin.Context) {
	var req models.UpdateTourRequest
	if !bindBody(c, &req) {
		return
	}

	id := c.Param("id")
	cover, images, err := h.images.TourImages(c, id)
	if err != nil {
		abort(c, err)
		return
	}
	if cover != "" {
		req.ImageCover = &cover
	}
	if len(images) > 0 {
		req.Images = images
	}

	tour, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		abort(c, err)
		return
	}

	response.Success(c, tour)
}

// Stats godoc
// @Summary      Tour statistics
// @Description  Rating and price statistics of tours rated 4.5 or better, by difficulty
// @Tags         tours
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /tours/tour-stats [get]
func (h *TourHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	response.Named(c, "stats", stats)
}

// MonthlyPlan godoc
// @Summary      Monthly plan
// @Description  Tour starts per month of a year
// @Tags         tours
// @Produce      json
// @Param        year  path      int  true  "Year"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Security     BearerAuth
// @Router       /tours/monthly-plan/{year} [get]
func (h *TourHandler) MonthlyPlan(c *gin.Context) {
	plan, err := h.service.MonthlyPlan(c.Request.Context(), c.Param("year"))
	if err != nil {
		abort(c, err)
		return
	}

	response.Named(c, "plan", plan)
}

// Within godoc
// @Summary      Tours within a radius
// @Description  Tours starting within distance of a point
// @Tags         tours
// @Produce      json
// @Param        distance  path      number  true  "Radius"
// @Param        latlng    path      string  true  "Centre as lat,lng"
// @Param        unit      path      string  true  "mi or km"
// @Success      200       {object}  response.Response{data=response.Payload{data=[]models.Tour}}
// @Failure      400       {object}  response.Response
// @Router       /tours/tours-within/{distance}/center/{latlng}/unit/{unit} [get]
func (h *TourHandler) Within(c *gin.Context) {
	tours, err := h.service.Within(c.Request.Context(), c.Param("distance"), c.Param("latlng"), c.Param("unit"))
	if err != nil {
		abort(c, err)
		return
	}

	response.List(c, tours)
}

// Distances godoc
// @Summary      Distances to tours
// @Description  Distance from a point to the start of every tour
// @Tags         tours
// @Produce      json
// @Param        latlng  path      string  true  "Origin as lat,lng"
// @Param        unit    path      string  true  "mi or km"
// @Success      200     {object}  response.Response{data=response.Payload{data=[]models.TourDistance}}
// @Failure      400     {object}  response.Response
// @Router       /tours/distances/{latlng}/unit/{unit} [get]
func (h *TourHandler) Distances(c *gin.Context) {
	distances, err := h.service.Distances(c.Request.Context(), c.Param("latlng"), c.Param("unit"))
	if err != nil {
		abort(c, err)
		return
	}

	response.Success(c, distances)
}

// GetAll godoc
// @Summary      List tours
// @Description  Filter with field[gte|gt|lte|lt]=value, sort, fields, page and limit. Secret tours are never listed.
// @Tags         tours
// @Produce      json
// @Param        sort    query     string  false  "Sort fields, - for descending"
// @Param        fields  query     string  false  "Projection"
// @Param        page    query     int     false  "Page"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  response.Response{data=response.Payload{data=[]models.Tour}}
// @Failure      400     {object}  response.Response
// @Router       /tours [get]
// @Router       /tours/top-5-cheap [get]
func (h *TourHandler) GetAll(c *gin.Context) {
	h.ResourceHandler.GetAll(c)
}

// GetOne godoc
// @Summary      Get tour
// @Description  One tour with its guides and reviews
// @Tags         tours
// @Produce      json
// @Param        id   path      string  true  "Tour ID"
// @Success      200  {object}  response.Response{data=response.Payload{data=models.Tour}}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /tours/{id} [get]
func (h *TourHandler) GetOne(c *gin.Context) {
	h.ResourceHandler.GetOne(c)
}

// CreateOne godoc
// @Summary      Create tour
// @Tags         tours
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateTourRequest  true  "Tour"
// @Success      201      {object}  response.Response{data=response.Payload{data=models.Tour}}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Security     BearerAuth
// @Router       /tours [post]
func (h *TourHandler) CreateOne(c *gin.Context) {
	h.ResourceHandler.CreateOne(c)
}

// DeleteOne godoc
// @Summary      Delete tour
// @Tags         tours
// @Param        id   path      string  true  "Tour ID"
// @Success      204
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /tours/{id} [delete]
func (h *TourHandler) DeleteOne(c *gin.Context) {
	h.ResourceHandler.DeleteOne(c)
}
