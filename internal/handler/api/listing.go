package api

import (
	"errors"
	"net/http"

	"swipemarket/internal/domain/listing"
	reqdto "swipemarket/internal/handler/dto/request"
	resdto "swipemarket/internal/handler/dto/response"
	"swipemarket/internal/handler/middleware"
	"swipemarket/internal/usecase/commands"
	"swipemarket/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListingHandler struct {
	listingCommands commands.ListingCommands
	listingQueries  queries.ListingQueries
}

func NewListingHandler(listingCommands commands.ListingCommands, listingQueries queries.ListingQueries) *ListingHandler {
	return &ListingHandler{
		listingCommands: listingCommands,
		listingQueries:  listingQueries,
	}
}

func (h *ListingHandler) CreateListing(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateListingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	snap, err := h.listingCommands.Create(c.Request.Context(), userID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSellerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Seller not found",
			})
		case errors.Is(err, commands.ErrEmailNotVerified):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Email must be verified",
			})
		case isListingValidationError(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromListingSnapshot(snap))
}

func (h *ListingHandler) CancelListing(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid listing ID format",
		})
		return
	}

	if err := h.listingCommands.Cancel(c.Request.Context(), listingID, userID); err != nil {
		switch {
		case errors.Is(err, commands.ErrListingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Listing not found",
			})
		case errors.Is(err, commands.ErrNotListingOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Listing belongs to another seller",
			})
		case errors.Is(err, commands.ErrListingNotActive):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Listing is no longer active",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ListingHandler) GetActiveListings(c *gin.Context) {
	views, err := h.listingQueries.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromListingList(views))
}

func isListingValidationError(err error) bool {
	for _, target := range []error{
		listing.ErrEmptyDiningHall,
		listing.ErrInvalidTimeWindow,
		listing.ErrNoPaymentTypes,
		listing.ErrNegativePrice,
		listing.ErrZeroTransactionDate,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
