package api

import (
	"net/http"

	reqdto "carmommy/internal/handler/dto/request"
	"carmommy/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	listingQueries queries.ListingQueries
}

func NewListingHandler(listingQueries queries.ListingQueries) *ListingHandler {
	return &ListingHandler{listingQueries: listingQueries}
}

// @Summary Search dealer listings
// @Description Search live dealer listings by zip code, make, model and radius
// @Tags listings
// @Produce json
// @Param zipCode query string true "Zip code"
// @Param make query string true "Vehicle make"
// @Param model query string true "Vehicle model"
// @Param radiusMiles query int false "Search radius in miles"
// @Success 200 {array} queries.ListingView
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /listings [get]
func (h *ListingHandler) Search(c *gin.Context) {
	var q reqdto.SearchListingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid search parameters",
		})
		return
	}

	listings, err := h.listingQueries.SearchListings(c.Request.Context(), queries.ListingSearchParams{
		ZipCode:     q.ZipCode,
		Make:        q.Make,
		Model:       q.Model,
		RadiusMiles: q.RadiusMiles,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to search listings",
		})
		return
	}

	c.JSON(http.StatusOK, listings)
}
