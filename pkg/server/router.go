package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ramsvik.no/Olsmak/pkg/auth"
)

// NewRouter wires the HTTP surface. Three tiers of access: public account
// endpoints, participant endpoints behind any valid token, and organizer
// endpoints behind an organizer token.
func NewRouter(users *UserServer, tastings *TastingServer, authManager *auth.Manager) http.Handler {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	api.POST("/users", users.Register)
	api.POST("/login", users.Login)
	api.POST("/identity", users.Identity)

	participant := api.Group("")
	participant.Use(authManager.Identify())
	{
		participant.POST("/join", tastings.Join)
		participant.GET("/tastings/:id", tastings.Get)
		participant.PUT("/tastings/:id/ratings", tastings.SubmitRating)
		participant.GET("/tastings/:id/ratings", tastings.RatingHistory)
		participant.GET("/tastings/:id/ratings/current", tastings.CurrentRating)
		participant.GET("/tastings/:id/live", tastings.Live)
	}

	organizer := api.Group("")
	organizer.Use(authManager.RequireOrganizer())
	{
		organizer.GET("/tastings", tastings.List)
		organizer.POST("/tastings", tastings.Create)
		organizer.POST("/tastings/:id/advance", tastings.Advance)
		organizer.POST("/tastings/:id/reveal", tastings.Reveal)
		organizer.GET("/tastings/:id/progress", tastings.Progress)
		organizer.GET("/tastings/:id/ranking", tastings.Ranking)
		organizer.GET("/tastings/:id/votes", tastings.Votes)

		organizer.GET("/tastings/:id/beers", tastings.ListBeers)
		organizer.POST("/tastings/:id/beers", tastings.AddBeer)
		organizer.PUT("/tastings/:id/beers/:beerID/assign", tastings.AssignBeer)
		organizer.PUT("/tastings/:id/beers/:beerID/unassign", tastings.UnassignBeer)
		organizer.DELETE("/tastings/:id/beers/:beerID", tastings.DeleteBeer)
	}

	return router
}
