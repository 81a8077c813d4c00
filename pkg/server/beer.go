package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.openly.dev/pointy"

	"ramsvik.no/Olsmak/pkg/model"
	"ramsvik.no/Olsmak/pkg/realtime"
	"ramsvik.no/Olsmak/pkg/repository"
)

type beerResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	BeerNo   *int   `json:"beerNo,omitempty"`
	Assigned bool   `json:"assigned"`
}

func toBeerResponse(beer *model.Beer) beerResponse {
	response := beerResponse{
		ID:       beer.ID,
		Name:     beer.Name,
		Assigned: beer.Assigned(),
	}

	// Pool placeholders are an implementation detail; only real slot
	// numbers leave the server.
	if beer.Assigned() {
		response.BeerNo = pointy.Int(beer.BeerNo)
	}

	return response
}

// ListBeers returns the roster split into placed and pooled beers, plus the
// slots still open for placement.
func (s *TastingServer) ListBeers(c *gin.Context) {
	tasting, ok := s.ownedTasting(c)
	if !ok {
		return
	}

	beers, err := s.beers.GetBeersForTasting(c.Request.Context(), tasting.ID)
	if err != nil {
		s.replyError(c, err)

		return
	}

	assigned := make([]beerResponse, 0)
	pool := make([]beerResponse, 0)
	placed := make([]model.Beer, 0, len(beers))

	for _, beer := range beers {
		if beer.Assigned() {
			assigned = append(assigned, toBeerResponse(beer))
			placed = append(placed, *beer)
		} else {
			pool = append(pool, toBeerResponse(beer))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"assigned":       assigned,
		"pool":           pool,
		"availableSlots": model.AvailableSlots(tasting.TotalBeers, placed),
	})
}

type addBeerRequest struct {
	Name string `json:"name" binding:"required"`
}

func (s *TastingServer) AddBeer(c *gin.Context) {
	tasting, ok := s.ownedTasting(c)
	if !ok {
		return
	}

	var request addBeerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	beer, err := s.beers.AddBeerToPool(c.Request.Context(), tasting.ID, request.Name)
	if err != nil {
		s.replyError(c, err)

		return
	}

	s.publishRoster(c, tasting.ID)
	c.JSON(http.StatusCreated, toBeerResponse(beer))
}

type assignBeerRequest struct {
	BeerNo int `json:"beerNo" binding:"required"`
}

// AssignBeer moves a pooled beer into a numbered slot. Assigning over an
// occupied slot replaces its occupant; the repository keeps the swap atomic.
func (s *TastingServer) AssignBeer(c *gin.Context) {
	tasting, ok := s.ownedTasting(c)
	if !ok {
		return
	}

	var request assignBeerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	beer, ok := s.rosterBeer(c, tasting.ID)
	if !ok {
		return
	}

	if err := s.beers.AssignBeer(c.Request.Context(), tasting.ID, beer.Name, request.BeerNo); err != nil {
		s.replyError(c, err)

		return
	}

	s.publishRoster(c, tasting.ID)
	c.Status(http.StatusNoContent)
}

func (s *TastingServer) UnassignBeer(c *gin.Context) {
	tasting, ok := s.ownedTasting(c)
	if !ok {
		return
	}

	beer, ok := s.rosterBeer(c, tasting.ID)
	if !ok {
		return
	}

	beer, err := s.beers.UnassignBeer(c.Request.Context(), beer.ID)
	if err != nil {
		s.replyError(c, err)

		return
	}

	s.publishRoster(c, tasting.ID)
	c.JSON(http.StatusOK, toBeerResponse(beer))
}

func (s *TastingServer) DeleteBeer(c *gin.Context) {
	tasting, ok := s.ownedTasting(c)
	if !ok {
		return
	}

	beer, ok := s.rosterBeer(c, tasting.ID)
	if !ok {
		return
	}

	if err := s.beers.DeleteBeer(c.Request.Context(), beer.ID); err != nil {
		s.replyError(c, err)

		return
	}

	s.publishRoster(c, tasting.ID)
	c.Status(http.StatusNoContent)
}

// rosterBeer loads the :beerID path beer and verifies it belongs to the
// tasting being edited.
func (s *TastingServer) rosterBeer(c *gin.Context, tastingID uint) (*model.Beer, bool) {
	beerID, ok := pathID(c, "beerID")
	if !ok {
		return nil, false
	}

	beer, err := s.beers.GetBeerByID(c.Request.Context(), beerID)
	if err != nil {
		s.replyError(c, err)

		return nil, false
	}

	if beer.TastingID != tastingID {
		c.JSON(http.StatusNotFound, gin.H{"error": repository.ErrBeerNotFound.Error()})

		return nil, false
	}

	return beer, true
}

func (s *TastingServer) publishRoster(c *gin.Context, tastingID uint) {
	s.events.Publish(c.Request.Context(), realtime.Event{
		Type:      realtime.EventRoster,
		TastingID: tastingID,
	})
}
