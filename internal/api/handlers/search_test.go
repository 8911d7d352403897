package handlers_test

import (
	"net/http"
	"testing"

	"github.com/adrianstier/rse-tracker/internal/api/handlers"
	"github.com/adrianstier/rse-tracker/internal/database/models"
	"github.com/adrianstier/rse-tracker/internal/mocks"
	"github.com/adrianstier/rse-tracker/internal/notify"
	"github.com/adrianstier/rse-tracker/internal/service"
	"github.com/adrianstier/rse-tracker/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SearchHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	scenarios   *mocks.MockRepository[models.Scenario]
	actionItems *mocks.MockActionItemRepositoryInterface
	events      *mocks.MockRepository[models.TimelineEvent]
	http        *testutils.HTTPTestSuite
}

func (suite *SearchHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.scenarios = mocks.NewMockRepository[models.Scenario](suite.ctrl)
	suite.actionItems = mocks.NewMockActionItemRepositoryInterface(suite.ctrl)
	suite.events = mocks.NewMockRepository[models.TimelineEvent](suite.ctrl)

	searchService := service.NewSearchService(suite.scenarios, suite.actionItems, suite.events)
	searchHandler := handlers.NewSearchHandler(searchService)
	eventsHandler := handlers.NewEventsHandler(notify.NewHub())

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.GET("/search", searchHandler.Search)
	suite.http.Router.GET("/notifications", eventsHandler.Recent)
}

func (suite *SearchHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SearchHandlerTestSuite) TestSearch() {
	suite.scenarios.EXPECT().Search(gomock.Any(), "nursery", 20).
		Return([]models.Scenario{{Title: "Nursery expansion"}}, nil)
	suite.actionItems.EXPECT().Search(gomock.Any(), "nursery", 20).
		Return([]models.ActionItem{}, nil)
	suite.events.EXPECT().Search(gomock.Any(), "nursery", 20).
		Return([]models.TimelineEvent{}, nil)

	recorder := suite.http.MakeRequest("GET", "/search?q=nursery", nil)

	var results service.SearchResults
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &results)
	assert.Len(suite.T(), results.Scenarios, 1)
}

func (suite *SearchHandlerTestSuite) TestSearch_EmptyQuery() {
	recorder := suite.http.MakeRequest("GET", "/search?q=", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *SearchHandlerTestSuite) TestRecentNotifications_EmptyHub() {
	recorder := suite.http.MakeRequest("GET", "/notifications", nil)

	var notifications []notify.Notification
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &notifications)
	assert.Len(suite.T(), notifications, 0)
}

func TestSearchHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SearchHandlerTestSuite))
}
