package api

import (
	"errors"
	"net/http"

	"swipemarket/internal/domain/order"
	reqdto "swipemarket/internal/handler/dto/request"
	resdto "swipemarket/internal/handler/dto/response"
	"swipemarket/internal/handler/middleware"
	"swipemarket/internal/usecase/commands"
	"swipemarket/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

func (h *OrderHandler) ClaimListing(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ClaimListingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	snap, err := h.orderCommands.Claim(c.Request.Context(), req.ListingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrListingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Listing not found",
			})
		case errors.Is(err, commands.ErrBuyerNotFound), errors.Is(err, commands.ErrSellerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		case errors.Is(err, commands.ErrEmailNotVerified):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Email must be verified",
			})
		case errors.Is(err, commands.ErrListingNotActive):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Listing is no longer active",
			})
		case errors.Is(err, commands.ErrOrderAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order already exists for this claim",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrderSnapshot(snap))
}

func (h *OrderHandler) RateOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	orderID := c.Param("id")

	var req reqdto.RateOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.orderCommands.Rate(c.Request.Context(), orderID, userID, req.Stars, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStars):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Stars must be an integer between 1 and 5",
			})
		case errors.Is(err, commands.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, commands.ErrRatedUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Rated user not found",
			})
		case errors.Is(err, order.ErrNotParticipant):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only order participants may rate",
			})
		case errors.Is(err, commands.ErrAlreadyRated):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order already rated by this participant",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRateResult(result))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.orderQueries.GetByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, queries.ErrOrderAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Order is visible to its participants only",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

func (h *OrderHandler) GetUserOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.orderQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderList(views))
}
