package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/adrianstier/rse-tracker/internal/apperrors"
	"github.com/adrianstier/rse-tracker/internal/database/models"
	"github.com/adrianstier/rse-tracker/internal/mocks"
	"github.com/adrianstier/rse-tracker/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SearchServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	scenarios   *mocks.MockRepository[models.Scenario]
	actionItems *mocks.MockActionItemRepositoryInterface
	events      *mocks.MockRepository[models.TimelineEvent]
	service     *service.SearchService
}

func (suite *SearchServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.scenarios = mocks.NewMockRepository[models.Scenario](suite.ctrl)
	suite.actionItems = mocks.NewMockActionItemRepositoryInterface(suite.ctrl)
	suite.events = mocks.NewMockRepository[models.TimelineEvent](suite.ctrl)
	suite.service = service.NewSearchService(suite.scenarios, suite.actionItems, suite.events)
}

func (suite *SearchServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SearchServiceTestSuite) TestSearch_GroupsResultsByCollection() {
	suite.scenarios.EXPECT().Search(gomock.Any(), "reef", 20).
		Return([]models.Scenario{{Title: "Reef restoration"}}, nil)
	suite.actionItems.EXPECT().Search(gomock.Any(), "reef", 20).
		Return([]models.ActionItem{}, nil)
	suite.events.EXPECT().Search(gomock.Any(), "reef", 20).
		Return([]models.TimelineEvent{{Title: "Reef survey"}}, nil)

	results, err := suite.service.Search(context.Background(), "reef")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "reef", results.Query)
	assert.Len(suite.T(), results.Scenarios, 1)
	assert.Len(suite.T(), results.ActionItems, 0)
	assert.Len(suite.T(), results.TimelineEvents, 1)
}

func (suite *SearchServiceTestSuite) TestSearch_TrimsWhitespace() {
	suite.scenarios.EXPECT().Search(gomock.Any(), "reef", 20).Return([]models.Scenario{}, nil)
	suite.actionItems.EXPECT().Search(gomock.Any(), "reef", 20).Return([]models.ActionItem{}, nil)
	suite.events.EXPECT().Search(gomock.Any(), "reef", 20).Return([]models.TimelineEvent{}, nil)

	results, err := suite.service.Search(context.Background(), "  reef  ")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "reef", results.Query)
}

func (suite *SearchServiceTestSuite) TestSearch_EmptyQueryRejected() {
	_, err := suite.service.Search(context.Background(), "   ")

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmptySearchQuery)
}

func (suite *SearchServiceTestSuite) TestSearch_StoreFailureWrapped() {
	suite.scenarios.EXPECT().Search(gomock.Any(), "reef", 20).
		Return(nil, errors.New("timeout"))

	_, err := suite.service.Search(context.Background(), "reef")

	assert.True(suite.T(), apperrors.IsRemoteCall(err))
}

func TestSearchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SearchServiceTestSuite))
}
