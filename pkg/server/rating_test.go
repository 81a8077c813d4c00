package server_test

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"ramsvik.no/Olsmak/pkg/model"
	"ramsvik.no/Olsmak/pkg/realtime"
	"ramsvik.no/Olsmak/pkg/repository"
)

func (suite *TastingServerSuite) TestSubmitRating_RecomputesScore() {
	suite.tastings.On("GetTastingByID", mock.Anything, uint(10)).Return(suite.ownedTasting(3), nil)

	expected := model.Rating{
		TastingID:   10,
		BeerNo:      3,
		UserID:      participantUUID,
		DisplayName: "Kari",
		Smak:        40,
		Ettersmak:   15,
		Farge:       18,
		Lukt:        8,
		Score:       81,
	}
	suite.ratings.On("UpsertRating", mock.Anything, expected).Return(&expected, nil)

	recorder := suite.request(http.MethodPut, "/tastings/10/ratings", gin.H{
		"beerNo":      3,
		"displayName": "Kari",
		"smak":        40,
		"ettersmak":   15,
		"farge":       18,
		"lukt":        8,
		// A lying client total is ignored; the server derives the score.
		"score": 100,
	})
	suite.Equal(http.StatusOK, recorder.Code)

	var response map[string]interface{}
	suite.decode(recorder, &response)
	suite.Equal(float64(81), response["score"])

	events := suite.events.published()
	suite.Require().Len(events, 1)
	suite.Equal(realtime.EventVote, events[0].Type)
	suite.Equal(3, events[0].BeerNo)
}

func (suite *TastingServerSuite) TestSubmitRating_RejectsOutOfRangeSubScore() {
	suite.tastings.On("GetTastingByID", mock.Anything, uint(10)).Return(suite.ownedTasting(3), nil)

	recorder := suite.request(http.MethodPut, "/tastings/10/ratings", gin.H{
		"beerNo":      3,
		"displayName": "Kari",
		"smak":        51,
	})
	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Empty(suite.events.published())
}

func (suite *TastingServerSuite) TestSubmitRating_RejectsBeerBeyondRoster() {
	suite.tastings.On("GetTastingByID", mock.Anything, uint(10)).Return(suite.ownedTasting(3), nil)

	recorder := suite.request(http.MethodPut, "/tastings/10/ratings", gin.H{
		"beerNo":      13,
		"displayName": "Kari",
		"smak":        40,
	})
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *TastingServerSuite) TestRatingHistory_ReturnsOwnVotes() {
	suite.ratings.On("GetRatingsForUser", mock.Anything, uint(10), participantUUID).
		Return([]*model.Rating{
			{BeerNo: 3, DisplayName: "Kari", Score: 81},
			{BeerNo: 2, DisplayName: "Kari", Score: 55},
		}, nil)

	recorder := suite.request(http.MethodGet, "/tastings/10/ratings", nil)
	suite.Equal(http.StatusOK, recorder.Code)

	var history []struct {
		BeerNo int `json:"beerNo"`
		Score  int `json:"score"`
	}
	suite.decode(recorder, &history)

	suite.Require().Len(history, 2)
	suite.Equal(3, history[0].BeerNo)
}

func (suite *TastingServerSuite) TestCurrentRating_DefaultsToActiveBeer() {
	suite.tastings.On("GetTastingByID", mock.Anything, uint(10)).Return(suite.ownedTasting(3), nil)
	suite.ratings.On("GetRating", mock.Anything, uint(10), 3, participantUUID).
		Return(&model.Rating{BeerNo: 3, DisplayName: "Kari", Score: 81}, nil)

	recorder := suite.request(http.MethodGet, "/tastings/10/ratings/current", nil)
	suite.Equal(http.StatusOK, recorder.Code)

	var response struct {
		BeerNo int `json:"beerNo"`
		Rating *struct {
			Score int `json:"score"`
		} `json:"rating"`
	}
	suite.decode(recorder, &response)

	suite.Equal(3, response.BeerNo)
	suite.Require().NotNil(response.Rating)
	suite.Equal(81, response.Rating.Score)
}

func (suite *TastingServerSuite) TestCurrentRating_NoVoteYet() {
	suite.ratings.On("GetRating", mock.Anything, uint(10), 5, participantUUID).
		Return(nil, repository.ErrRatingNotFound)

	recorder := suite.request(http.MethodGet, "/tastings/10/ratings/current?beer_no=5", nil)
	suite.Equal(http.StatusOK, recorder.Code)

	var response struct {
		BeerNo int         `json:"beerNo"`
		Rating interface{} `json:"rating"`
	}
	suite.decode(recorder, &response)

	suite.Equal(5, response.BeerNo)
	suite.Nil(response.Rating)
}
