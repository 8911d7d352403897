package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/adrianstier/rse-tracker/internal/api/handlers"
	"github.com/adrianstier/rse-tracker/internal/cache"
	"github.com/adrianstier/rse-tracker/internal/database/models"
	"github.com/adrianstier/rse-tracker/internal/mocks"
	"github.com/adrianstier/rse-tracker/internal/notify"
	"github.com/adrianstier/rse-tracker/internal/repository"
	"github.com/adrianstier/rse-tracker/internal/service"
	syncpkg "github.com/adrianstier/rse-tracker/internal/sync"
	"github.com/adrianstier/rse-tracker/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ScenarioHandlerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	repo *mocks.MockRepository[models.Scenario]
	http *testutils.HTTPTestSuite
}

func (suite *ScenarioHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockRepository[models.Scenario](suite.ctrl)

	qc := cache.New(5 * time.Minute)
	engine := syncpkg.NewEngine[models.Scenario](repository.ScenarioDescriptor, suite.repo, qc, notify.NewHub())
	scenarioService := service.NewScenarioService(engine, qc, validator.New())
	handler := handlers.NewScenarioHandler(scenarioService)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.GET("/scenarios", handler.ListScenarios)
	suite.http.Router.GET("/scenarios/:id", handler.GetScenario)
	suite.http.Router.POST("/scenarios", handler.CreateScenario)
	suite.http.Router.PATCH("/scenarios/:id", handler.UpdateScenario)
	suite.http.Router.DELETE("/scenarios/:id", handler.DeleteScenario)
}

func (suite *ScenarioHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ScenarioHandlerTestSuite) TestListScenarios() {
	suite.repo.EXPECT().List(gomock.Any(), gomock.Any()).
		Return([]models.Scenario{{Title: "Reef restoration"}}, nil)

	recorder := suite.http.MakeRequest("GET", "/scenarios", nil)

	var scenarios []models.Scenario
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &scenarios)
	assert.Len(suite.T(), scenarios, 1)
	assert.Equal(suite.T(), "Reef restoration", scenarios[0].Title)
}

func (suite *ScenarioHandlerTestSuite) TestListScenarios_FiltersForwarded() {
	suite.repo.EXPECT().List(gomock.Any(), map[string]interface{}{"project": "mote"}).
		Return([]models.Scenario{}, nil)

	recorder := suite.http.MakeRequest("GET", "/scenarios?project=mote", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *ScenarioHandlerTestSuite) TestGetScenario_NotFound() {
	id := uuid.New()
	suite.repo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	recorder := suite.http.MakeRequest("GET", "/scenarios/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func (suite *ScenarioHandlerTestSuite) TestGetScenario_MalformedID() {
	recorder := suite.http.MakeRequest("GET", "/scenarios/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *ScenarioHandlerTestSuite) TestCreateScenario() {
	suite.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	recorder := suite.http.MakeRequest("POST", "/scenarios", map[string]interface{}{
		"title":   "Boulder coral outplanting",
		"project": "fundemar",
	})

	var scenario models.Scenario
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &scenario)
	assert.Equal(suite.T(), "Boulder coral outplanting", scenario.Title)
	assert.Equal(suite.T(), models.ScenarioStatusPlanning, scenario.Status)
}

func (suite *ScenarioHandlerTestSuite) TestCreateScenario_ValidationFailure() {
	recorder := suite.http.MakeRequest("POST", "/scenarios", map[string]interface{}{
		"project": "mote",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *ScenarioHandlerTestSuite) TestUpdateScenario() {
	id := uuid.New()
	updated := models.Scenario{Title: "renamed"}
	suite.repo.EXPECT().Update(gomock.Any(), id, map[string]interface{}{"title": "renamed"}).
		Return(&updated, nil)

	recorder := suite.http.MakeRequest("PATCH", "/scenarios/"+id.String(), map[string]interface{}{
		"title": "renamed",
	})

	var scenario models.Scenario
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &scenario)
	assert.Equal(suite.T(), "renamed", scenario.Title)
}

func (suite *ScenarioHandlerTestSuite) TestUpdateScenario_NotFound() {
	id := uuid.New()
	suite.repo.EXPECT().Update(gomock.Any(), id, gomock.Any()).
		Return(nil, gorm.ErrRecordNotFound)

	recorder := suite.http.MakeRequest("PATCH", "/scenarios/"+id.String(), map[string]interface{}{
		"status": "active",
	})

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func (suite *ScenarioHandlerTestSuite) TestDeleteScenario() {
	id := uuid.New()
	suite.repo.EXPECT().Delete(gomock.Any(), id).Return(nil)

	recorder := suite.http.MakeRequest("DELETE", "/scenarios/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func TestScenarioHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ScenarioHandlerTestSuite))
}
