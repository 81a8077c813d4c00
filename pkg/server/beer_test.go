package server_test

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"ramsvik.no/Olsmak/pkg/model"
	"ramsvik.no/Olsmak/pkg/realtime"
	"ramsvik.no/Olsmak/pkg/repository"
)

func (suite *TastingServerSuite) TestListBeers_SplitsRosterAndReportsSlots() {
	suite.tastings.On("GetTastingByID", mock.Anything, uint(10)).Return(suite.ownedTasting(3), nil)
	suite.beers.On("GetBeersForTasting", mock.Anything, uint(10)).Return([]*model.Beer{
		{Model: gorm.Model{ID: 7}, TastingID: 10, BeerNo: 2, Name: "Aass Bock"},
		{Model: gorm.Model{ID: 8}, TastingID: 10, BeerNo: 4, Name: "Nøgne Ø Imperial Stout"},
		{Model: gorm.Model{ID: 9}, TastingID: 10, BeerNo: model.PoolPlaceholderBase + 17, Name: "Frydenlund Pilsner"},
	}, nil)

	recorder := suite.request(http.MethodGet, "/tastings/10/beers", nil)
	suite.Equal(http.StatusOK, recorder.Code)

	var response struct {
		Assigned []struct {
			ID     uint   `json:"id"`
			Name   string `json:"name"`
			BeerNo int    `json:"beerNo"`
		} `json:"assigned"`
		Pool []struct {
			ID     uint   `json:"id"`
			Name   string `json:"name"`
			BeerNo int    `json:"beerNo"`
		} `json:"pool"`
		AvailableSlots []int `json:"availableSlots"`
	}
	suite.decode(recorder, &response)

	suite.Require().Len(response.Assigned, 2)
	suite.Equal(2, response.Assigned[0].BeerNo)

	suite.Require().Len(response.Pool, 1)
	suite.Equal("Frydenlund Pilsner", response.Pool[0].Name)
	// Placeholder numbers stay server-side.
	suite.Zero(response.Pool[0].BeerNo)

	suite.Equal([]int{1, 3, 5, 6, 7, 8, 9, 10, 11, 12}, response.AvailableSlots)
}

func (suite *TastingServerSuite) TestAddBeer_PublishesRosterEvent() {
	suite.tastings.On("GetTastingByID", mock.Anything, uint(10)).Return(suite.ownedTasting(3), nil)
	suite.beers.On("AddBeerToPool", mock.Anything, uint(10), "Aass Bock").
		Return(&model.Beer{Model: gorm.Model{ID: 7}, TastingID: 10, BeerNo: 612, Name: "Aass Bock"}, nil)

	recorder := suite.request(http.MethodPost, "/tastings/10/beers", gin.H{"name": "Aass Bock"})
	suite.Equal(http.StatusCreated, recorder.Code)

	events := suite.events.published()
	suite.Require().Len(events, 1)
	suite.Equal(realtime.EventRoster, events[0].Type)
}

func (suite *TastingServerSuite) TestAssignBeer_PlacesPooledBeer() {
	suite.tastings.On("GetTastingByID", mock.Anything, uint(10)).Return(suite.ownedTasting(3), nil)
	suite.beers.On("GetBeerByID", mock.Anything, uint(7)).
		Return(&model.Beer{Model: gorm.Model{ID: 7}, TastingID: 10, BeerNo: 612, Name: "Aass Bock"}, nil)
	suite.beers.On("AssignBeer", mock.Anything, uint(10), "Aass Bock", 3).Return(nil)

	recorder := suite.request(http.MethodPut, "/tastings/10/beers/7/assign", gin.H{"beerNo": 3})
	suite.Equal(http.StatusNoContent, recorder.Code)
	suite.Len(suite.events.published(), 1)
}

func (suite *TastingServerSuite) TestAssignBeer_RejectsInvalidSlot() {
	suite.tastings.On("GetTastingByID", mock.Anything, uint(10)).Return(suite.ownedTasting(3), nil)
	suite.beers.On("GetBeerByID", mock.Anything, uint(7)).
		Return(&model.Beer{Model: gorm.Model{ID: 7}, TastingID: 10, BeerNo: 612, Name: "Aass Bock"}, nil)
	suite.beers.On("AssignBeer", mock.Anything, uint(10), "Aass Bock", 500).
		Return(repository.ErrInvalidSlot)

	recorder := suite.request(http.MethodPut, "/tastings/10/beers/7/assign", gin.H{"beerNo": 500})
	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Empty(suite.events.published())
}

func (suite *TastingServerSuite) TestAssignBeer_ForeignBeerReadsAsNotFound() {
	suite.tastings.On("GetTastingByID", mock.Anything, uint(10)).Return(suite.ownedTasting(3), nil)
	suite.beers.On("GetBeerByID", mock.Anything, uint(7)).
		Return(&model.Beer{Model: gorm.Model{ID: 7}, TastingID: 99, BeerNo: 612, Name: "Aass Bock"}, nil)

	recorder := suite.request(http.MethodPut, "/tastings/10/beers/7/assign", gin.H{"beerNo": 3})
	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *TastingServerSuite) TestUnassignBeer_ReturnsPooledBeer() {
	suite.tastings.On("GetTastingByID", mock.Anything, uint(10)).Return(suite.ownedTasting(3), nil)
	suite.beers.On("GetBeerByID", mock.Anything, uint(7)).
		Return(&model.Beer{Model: gorm.Model{ID: 7}, TastingID: 10, BeerNo: 3, Name: "Aass Bock"}, nil)
	suite.beers.On("UnassignBeer", mock.Anything, uint(7)).
		Return(&model.Beer{Model: gorm.Model{ID: 7}, TastingID: 10, BeerNo: 734, Name: "Aass Bock"}, nil)

	recorder := suite.request(http.MethodPut, "/tastings/10/beers/7/unassign", nil)
	suite.Equal(http.StatusOK, recorder.Code)

	var response map[string]interface{}
	suite.decode(recorder, &response)
	suite.Equal(false, response["assigned"])
}

func (suite *TastingServerSuite) TestDeleteBeer_RemovesRosterEntry() {
	suite.tastings.On("GetTastingByID", mock.Anything, uint(10)).Return(suite.ownedTasting(3), nil)
	suite.beers.On("GetBeerByID", mock.Anything, uint(7)).
		Return(&model.Beer{Model: gorm.Model{ID: 7}, TastingID: 10, BeerNo: 3, Name: "Aass Bock"}, nil)
	suite.beers.On("DeleteBeer", mock.Anything, uint(7)).Return(nil)

	recorder := suite.request(http.MethodDelete, "/tastings/10/beers/7", nil)
	suite.Equal(http.StatusNoContent, recorder.Code)
	suite.Len(suite.events.published(), 1)
}
