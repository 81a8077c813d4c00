package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ramsvik.no/Olsmak/pkg/auth"
	"ramsvik.no/Olsmak/pkg/model"
	"ramsvik.no/Olsmak/pkg/realtime"
	"ramsvik.no/Olsmak/pkg/repository"
)

// eventPublisher pushes change notifications towards the live clients.
type eventPublisher interface {
	Publish(ctx context.Context, event realtime.Event)
}

// TastingServer owns the live-session surface: session state, the beer
// roster, scoring, and results.
type TastingServer struct {
	logger   *zap.Logger
	tastings repository.TastingRepository
	beers    repository.BeerRepository
	ratings  repository.RatingRepository
	events   eventPublisher
	hub      *realtime.Hub
}

func NewTastingServer(
	tastings repository.TastingRepository,
	beers repository.BeerRepository,
	ratings repository.RatingRepository,
	events eventPublisher,
	hub *realtime.Hub,
	logger *zap.Logger,
) *TastingServer {
	return &TastingServer{
		logger:   logger,
		tastings: tastings,
		beers:    beers,
		ratings:  ratings,
		events:   events,
		hub:      hub,
	}
}

type tastingResponse struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	JoinCode      string `json:"joinCode,omitempty"`
	TotalBeers    int    `json:"totalBeers"`
	CurrentBeerNo int    `json:"currentBeerNo"`
	Revealed      bool   `json:"revealed"`
}

func toTastingResponse(tasting *model.Tasting, includeCode bool) tastingResponse {
	response := tastingResponse{
		ID:            tasting.ID,
		Title:         tasting.Title,
		TotalBeers:    tasting.TotalBeers,
		CurrentBeerNo: tasting.CurrentBeerNo,
		Revealed:      tasting.Revealed,
	}

	if includeCode {
		response.JoinCode = tasting.JoinCode
	}

	return response
}

// currentUser pulls the organizer row resolved by the auth middleware.
func currentUser(c *gin.Context) *model.User {
	user, _ := c.MustGet(auth.UserKey).(*model.User)

	return user
}

// participantID pulls the token subject set by the auth middleware.
func participantID(c *gin.Context) string {
	id, _ := c.MustGet(auth.ParticipantKey).(string)

	return id
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})

		return 0, false
	}

	return uint(id), true
}

// ownedTasting loads the tasting from the :id path parameter and verifies
// the caller organizes it. Foreign tastings read as not found so the
// response does not leak which ids exist.
func (s *TastingServer) ownedTasting(c *gin.Context) (*model.Tasting, bool) {
	tastingID, ok := pathID(c, "id")
	if !ok {
		return nil, false
	}

	tasting, err := s.tastings.GetTastingByID(c.Request.Context(), tastingID)
	if err != nil {
		s.replyError(c, err)

		return nil, false
	}

	if tasting.CreatedByID != currentUser(c).ID {
		c.JSON(http.StatusNotFound, gin.H{"error": repository.ErrTastingNotFound.Error()})

		return nil, false
	}

	return tasting, true
}

func (s *TastingServer) replyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrTastingNotFound),
		errors.Is(err, repository.ErrBeerNotFound),
		errors.Is(err, repository.ErrRatingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrInvalidSlot), errors.Is(err, model.ErrScoreOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrCodeExhausted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		s.logger.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

type createTastingRequest struct {
	Title      string `json:"title" binding:"required"`
	TotalBeers int    `json:"totalBeers" binding:"required,min=1,max=499"`
}

func (s *TastingServer) Create(c *gin.Context) {
	var request createTastingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	tasting, err := s.tastings.CreateTasting(c.Request.Context(), request.Title, request.TotalBeers, *currentUser(c))
	if err != nil {
		s.replyError(c, err)

		return
	}

	c.JSON(http.StatusCreated, toTastingResponse(tasting, true))
}

func (s *TastingServer) List(c *gin.Context) {
	tastings, err := s.tastings.GetTastingsForUser(c.Request.Context(), *currentUser(c))
	if err != nil {
		s.replyError(c, err)

		return
	}

	response := make([]tastingResponse, 0, len(tastings))
	for _, tasting := range tastings {
		response = append(response, toTastingResponse(tasting, true))
	}

	c.JSON(http.StatusOK, response)
}

// Get serves tasting metadata to any authenticated caller. The join code is
// only included for the organizer who owns the session.
func (s *TastingServer) Get(c *gin.Context) {
	tastingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	tasting, err := s.tastings.GetTastingByID(c.Request.Context(), tastingID)
	if err != nil {
		s.replyError(c, err)

		return
	}

	owner, _ := c.Get(auth.UserKey)
	user, isOrganizer := owner.(*model.User)
	includeCode := isOrganizer && user.ID == tasting.CreatedByID

	c.JSON(http.StatusOK, toTastingResponse(tasting, includeCode))
}

type joinRequest struct {
	Code string `json:"code" binding:"required,len=4"`
}

// Join resolves a 4-character code to its tasting. This is the only way a
// participant learns a tasting id.
func (s *TastingServer) Join(c *gin.Context) {
	var request joinRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	tasting, err := s.tastings.ResolveJoinCode(c.Request.Context(), request.Code)
	if err != nil {
		s.replyError(c, err)

		return
	}

	c.JSON(http.StatusOK, toTastingResponse(tasting, false))
}

type advanceRequest struct {
	Delta int `json:"delta" binding:"required"`
}

func (s *TastingServer) Advance(c *gin.Context) {
	tasting, ok := s.ownedTasting(c)
	if !ok {
		return
	}

	var request advanceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	tasting, err := s.tastings.AdvanceBeer(c.Request.Context(), tasting.ID, request.Delta)
	if err != nil {
		s.replyError(c, err)

		return
	}

	s.events.Publish(c.Request.Context(), realtime.Event{
		Type:      realtime.EventAdvance,
		TastingID: tasting.ID,
		BeerNo:    tasting.CurrentBeerNo,
	})

	c.JSON(http.StatusOK, toTastingResponse(tasting, true))
}

func (s *TastingServer) Reveal(c *gin.Context) {
	tasting, ok := s.ownedTasting(c)
	if !ok {
		return
	}

	tasting, err := s.tastings.Reveal(c.Request.Context(), tasting.ID)
	if err != nil {
		s.replyError(c, err)

		return
	}

	s.events.Publish(c.Request.Context(), realtime.Event{
		Type:      realtime.EventReveal,
		TastingID: tasting.ID,
		Revealed:  true,
	})

	c.JSON(http.StatusOK, toTastingResponse(tasting, true))
}

type participantProgress struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	Votes       int    `json:"votes"`
	VotedNow    bool   `json:"votedNow"`
}

// Progress reports who has joined the vote and whether each participant has
// scored the beer currently being poured.
func (s *TastingServer) Progress(c *gin.Context) {
	tasting, ok := s.ownedTasting(c)
	if !ok {
		return
	}

	ratings, err := s.ratings.GetRatingsForTasting(c.Request.Context(), tasting.ID)
	if err != nil {
		s.replyError(c, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{
		"currentBeerNo": tasting.CurrentBeerNo,
		"participants":  summarizeParticipants(ratings, tasting.CurrentBeerNo),
	})
}
