package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ramsvik.no/Olsmak/pkg/model"
	"ramsvik.no/Olsmak/pkg/realtime"
	"ramsvik.no/Olsmak/pkg/repository"
)

type submitRatingRequest struct {
	BeerNo      int    `json:"beerNo" binding:"required,min=1"`
	DisplayName string `json:"displayName" binding:"required"`
	Smak        int    `json:"smak"`
	Ettersmak   int    `json:"ettersmak"`
	Farge       int    `json:"farge"`
	Lukt        int    `json:"lukt"`
}

type ratingResponse struct {
	BeerNo      int    `json:"beerNo"`
	DisplayName string `json:"displayName"`
	Smak        int    `json:"smak"`
	Ettersmak   int    `json:"ettersmak"`
	Farge       int    `json:"farge"`
	Lukt        int    `json:"lukt"`
	Score       int    `json:"score"`
}

func toRatingResponse(rating *model.Rating) ratingResponse {
	return ratingResponse{
		BeerNo:      rating.BeerNo,
		DisplayName: rating.DisplayName,
		Smak:        rating.Smak,
		Ettersmak:   rating.Ettersmak,
		Farge:       rating.Farge,
		Lukt:        rating.Lukt,
		Score:       rating.Score,
	}
}

// SubmitRating records a participant's sub-scores for one beer. The total is
// always recomputed here; a client-supplied score is ignored.
func (s *TastingServer) SubmitRating(c *gin.Context) {
	tastingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	tasting, err := s.tastings.GetTastingByID(c.Request.Context(), tastingID)
	if err != nil {
		s.replyError(c, err)

		return
	}

	var request submitRatingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if request.BeerNo > tasting.TotalBeers {
		c.JSON(http.StatusBadRequest, gin.H{"error": "beer number beyond this tasting"})

		return
	}

	rating := model.Rating{
		TastingID:   tasting.ID,
		BeerNo:      request.BeerNo,
		UserID:      participantID(c),
		DisplayName: request.DisplayName,
		Smak:        request.Smak,
		Ettersmak:   request.Ettersmak,
		Farge:       request.Farge,
		Lukt:        request.Lukt,
	}

	if err := rating.Validate(); err != nil {
		s.replyError(c, err)

		return
	}

	rating.Score = rating.ComputeScore()

	saved, err := s.ratings.UpsertRating(c.Request.Context(), rating)
	if err != nil {
		s.replyError(c, err)

		return
	}

	s.events.Publish(c.Request.Context(), realtime.Event{
		Type:      realtime.EventVote,
		TastingID: tasting.ID,
		BeerNo:    saved.BeerNo,
	})

	c.JSON(http.StatusOK, toRatingResponse(saved))
}

// RatingHistory returns the caller's own votes in this tasting, most recent
// beer first.
func (s *TastingServer) RatingHistory(c *gin.Context) {
	tastingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ratings, err := s.ratings.GetRatingsForUser(c.Request.Context(), tastingID, participantID(c))
	if err != nil {
		s.replyError(c, err)

		return
	}

	response := make([]ratingResponse, 0, len(ratings))
	for _, rating := range ratings {
		response = append(response, toRatingResponse(rating))
	}

	c.JSON(http.StatusOK, response)
}

// CurrentRating returns the caller's vote for one beer so a rejoining client
// can restore its form state. Defaults to the beer currently being poured.
func (s *TastingServer) CurrentRating(c *gin.Context) {
	tastingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	beerNo := 0

	if raw := c.Query("beer_no"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid beer_no"})

			return
		}

		beerNo = parsed
	}

	if beerNo == 0 {
		tasting, err := s.tastings.GetTastingByID(c.Request.Context(), tastingID)
		if err != nil {
			s.replyError(c, err)

			return
		}

		beerNo = tasting.CurrentBeerNo
	}

	rating, err := s.ratings.GetRating(c.Request.Context(), tastingID, beerNo, participantID(c))
	if err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			c.JSON(http.StatusOK, gin.H{"beerNo": beerNo, "rating": nil})

			return
		}

		s.replyError(c, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"beerNo": beerNo, "rating": toRatingResponse(rating)})
}
