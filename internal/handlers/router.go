package handlers

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/BLVNQ/buildconnect-server/internal/domain"
)

// NewRouter binds the full HTTP surface. Paths are stable contracts.
func NewRouter(log *zap.Logger, bh *BookingHandler, ph *PaymentHandler, lh *ListingHandler, ah *AuthHandler) *gin.Engine {
	r := gin.New()
	r.Use(ginzap.Ginzap(log, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(log, true))
	r.Use(otelgin.Middleware("buildconnect-api"))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "BuildConnect API is running")
	})

	api := r.Group("/api")
	{
		api.POST("/create-order", ph.CreateOrder)

		api.POST("/create-booking", bh.Create)
		api.GET("/my-bookings/:userId", bh.MyBookings)
		api.PUT("/bookings/:bookingId/cancel", bh.Cancel)

		api.POST("/add-listing", lh.Add)
		api.PUT("/listing/:collectionName/:listingId", lh.Update)
		api.DELETE("/listing/:collectionName/:listingId", lh.Delete)
		api.GET("/my-listings/:userId", lh.MyListings)
		api.GET("/equipment", lh.ListCollection(domain.Equipments))
		api.GET("/materials", lh.ListCollection(domain.Materials))
		api.GET("/contractors", lh.ListCollection(domain.Contractors))

		api.POST("/register", ah.Register)
	}
	return r
}
