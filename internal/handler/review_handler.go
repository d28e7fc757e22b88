package handler

import (
	"tourbook/internal/middleware"
	"tourbook/internal/models"
	"tourbook/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// TourIDParam names the tour on nested review routes.
const TourIDParam = "tourId"

// ReviewHandler serves reviews both at /reviews and nested under
// /tours/:tourId/reviews.
type ReviewHandler struct {
	*ResourceHandler[models.Review]
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service service.ReviewServicer) *ReviewHandler {
	return &ReviewHandler{
		ResourceHandler: NewResourceHandler[models.Review](
			service,
			func() models.Creatable[models.Review] { return &models.CreateReviewRequest{} },
			func() models.Patch { return &models.UpdateReviewRequest{} },
			WithScope[models.Review](reviewScope),
			WithBeforeCreate[models.Review](setReviewRefs),
		),
	}
}

// reviewScope limits a nested listing to the tour in the path.
func reviewScope(c *gin.Context) (bson.M, error) {
	raw := c.Param(TourIDParam)
	if raw == "" {
		return nil, nil
	}
	tourID, err := service.ParseID(raw)
	if err != nil {
		return nil, err
	}
	return bson.M{"tour": tourID}, nil
}

// setReviewRefs defaults the tour to the path and the author to the
// signed-in user.
func setReviewRefs(c *gin.Context, review *models.Review) error {
	if review.Tour.IsZero() {
		if raw := c.Param(TourIDParam); raw != "" {
			tourID, err := service.ParseID(raw)
			if err != nil {
				return err
			}
			review.Tour = tourID
		}
	}
	if review.User.IsZero() {
		if user := middleware.CurrentUser(c); user != nil {
			review.User = user.ID
		}
	}
	return nil
}

// GetAll godoc
// @Summary      List reviews
// @Tags         reviews
// @Produce      json
// @Param        rating  query     number  false  "Filter by rating"
// @Success      200     {object}  response.Response{data=response.Payload{data=[]models.Review}}
// @Failure      401     {object}  response.Response
// @Security     BearerAuth
// @Router       /reviews [get]
func (h *ReviewHandler) GetAll(c *gin.Context) {
	h.ResourceHandler.GetAll(c)
}

// TourReviews godoc
// @Summary      List reviews of a tour
// @Tags         reviews
// @Produce      json
// @Param        id   path      string  true  "Tour ID"
// @Success      200  {object}  response.Response{data=response.Payload{data=[]models.Review}}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Security     BearerAuth
// @Router       /tours/{id}/reviews [get]
func (h *ReviewHandler) TourReviews(c *gin.Context) {
	h.ResourceHandler.GetAll(c)
}

// GetOne godoc
// @Summary      Get review
// @Tags         reviews
// @Produce      json
// @Param        id   path      string  true  "Review ID"
// @Success      200  {object}  response.Response{data=response.Payload{data=models.Review}}
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /reviews/{id} [get]
func (h *ReviewHandler) GetOne(c *gin.Context) {
	h.ResourceHandler.GetOne(c)
}

// CreateOne godoc
// @Summary      Create review
// @Description  The author is the signed-in user. One review per tour and user.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateReviewRequest  true  "Review"
// @Success      201      {object}  response.Response{data=response.Payload{data=models.Review}}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Security     BearerAuth
// @Router       /reviews [post]
func (h *ReviewHandler) CreateOne(c *gin.Context) {
	h.ResourceHandler.CreateOne(c)
}

// CreateTourReview godoc
// @Summary      Review a tour
// @Description  The tour comes from the path and the author is the signed-in user
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Tour ID"
// @Param        request  body      models.CreateReviewRequest  true  "Review"
// @Success      201      {object}  response.Response{data=response.Payload{data=models.Review}}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Security     BearerAuth
// @Router       /tours/{id}/reviews [post]
func (h *ReviewHandler) CreateTourReview(c *gin.Context) {
	h.ResourceHandler.CreateOne(c)
}

// UpdateOne godoc
// @Summary      Update review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Review ID"
// @Param        request  body      models.UpdateReviewRequest  true  "Review changes"
// @Success      200      {object}  response.Response{data=response.Payload{data=models.Review}}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Security     BearerAuth
// @Router       /reviews/{id} [patch]
func (h *ReviewHandler) UpdateOne(c *gin.Context) {
	h.ResourceHandler.UpdateOne(c)
}

// DeleteOne godoc
// @Summary      Delete review
// @Tags         reviews
// @Param        id   path      string  true  "Review ID"
// @Success      204
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /reviews/{id} [delete]
func (h *ReviewHandler) DeleteOne(c *gin.Context) {
	h.ResourceHandler.DeleteOne(c)
}
