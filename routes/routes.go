package routes

import (
	"net/http"
	"time"

	"buildlanka/handlers"
	"buildlanka/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers wired in main.
type HandlerBundle struct {
	Catalog      *handlers.CatalogHandler
	Registration *handlers.RegistrationHandler
	Contact      *handlers.ContactHandler
	Partner      *handlers.PartnerHandler
}

// RegisterCatalogRoutes registers marketplace browse endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/districts", hb.Catalog.DistrictsHandler)
		api.GET("/listings/:id", hb.Catalog.GetListingHandler)
		api.GET("/:kind", hb.Catalog.BrowseHandler)
		api.GET("/:kind/categories", hb.Catalog.CategoriesHandler)
	}
}

// RegisterRegistrationRoutes registers the partner registration wizard.
func RegisterRegistrationRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/partners/register")
	{
		api.GET("/options", hb.Registration.OptionsHandler)
		api.POST("/session", hb.Registration.OpenHandler)

		sess := api.Group("/session/:sessionID")
		sess.GET("", hb.Registration.GetHandler)
		sess.DELETE("", hb.Registration.CancelHandler)
		sess.PUT("/type", hb.Registration.SelectTypeHandler)
		sess.PUT("/business", hb.Registration.BusinessInfoHandler)
		sess.PUT("/location", hb.Registration.LocationHandler)
		sess.PUT("/insurance", hb.Registration.InsuranceHandler)
		sess.POST("/services/toggle", hb.Registration.ToggleServiceHandler)
		sess.POST("/certifications/toggle", hb.Registration.ToggleCertificationHandler)
		sess.POST("/documents/:slot", hb.Registration.DocumentHandler)
		sess.POST("/photos", hb.Registration.PhotosHandler)
		sess.DELETE("/photos/:index", hb.Registration.RemovePhotoHandler)
		sess.POST("/next", hb.Registration.NextHandler)
		sess.POST("/previous", hb.Registration.PreviousHandler)
		sess.POST("/submit", hb.Registration.SubmitHandler)
	}
}

// RegisterPartnerRoutes registers submitted-partner review endpoints.
func RegisterPartnerRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/partners")
	{
		api.GET("", hb.Partner.ListByStatusHandler)
		api.GET("/:id", hb.Partner.GetPartnerHandler)
		api.PATCH("/:id/status", hb.Partner.UpdateStatusHandler)
		api.GET("/:id/notifications", hb.Partner.NotificationsHandler)
	}
}

// RegisterContactRoutes registers supplier contact-link endpoints.
func RegisterContactRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/contact")
	{
		api.GET("/:listingID", hb.Contact.LinksHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterRegistrationRoutes(r, hb)
	RegisterPartnerRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterHealthRoute(r)
}
