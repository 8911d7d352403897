package sync_test

import (
	"context"
	"errors"
	gosync "sync"
	"testing"
	"time"

	"github.com/adrianstier/rse-tracker/internal/apperrors"
	"github.com/adrianstier/rse-tracker/internal/cache"
	"github.com/adrianstier/rse-tracker/internal/database/models"
	"github.com/adrianstier/rse-tracker/internal/mocks"
	"github.com/adrianstier/rse-tracker/internal/repository"
	syncpkg "github.com/adrianstier/rse-tracker/internal/sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// recordingNotifier captures notifications without a hub
type recordingNotifier struct {
	mu        gosync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(kind, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(kind, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

func (n *recordingNotifier) counts() (int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.successes), len(n.errors)
}

type EngineTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *mocks.MockRepository[models.ActionItem]
	cache    *cache.QueryCache
	notifier *recordingNotifier
	engine   *syncpkg.Engine[models.ActionItem]
}

func (suite *EngineTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockRepository[models.ActionItem](suite.ctrl)
	suite.cache = cache.New(5 * time.Minute)
	suite.notifier = &recordingNotifier{}
	suite.engine = syncpkg.NewEngine[models.ActionItem](repository.ActionItemDescriptor, suite.repo, suite.cache, suite.notifier)
}

func (suite *EngineTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func actionItem(title string, status models.ActionItemStatus) models.ActionItem {
	return models.ActionItem{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:  title,
		Status: status,
	}
}

func (suite *EngineTestSuite) TestList_ServesSecondReadFromCache() {
	rows := []models.ActionItem{actionItem("one", models.ActionItemStatusTodo)}
	suite.repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(rows, nil).Times(1)

	first, err := suite.engine.List(context.Background(), nil)
	assert.NoError(suite.T(), err)
	second, err := suite.engine.List(context.Background(), nil)
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), first, second)
}

func (suite *EngineTestSuite) TestList_RemoteFailureWrapped() {
	suite.repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := suite.engine.List(context.Background(), nil)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsRemoteCall(err))
	assert.Contains(suite.T(), err.Error(), "connection refused")
}

func (suite *EngineTestSuite) TestList_ValidationErrorPassesThrough() {
	suite.repo.EXPECT().List(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("title", "not an equality-filterable column"))

	_, err := suite.engine.List(context.Background(), map[string]interface{}{"title": "x"})

	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.False(suite.T(), apperrors.IsRemoteCall(err))
}

func (suite *EngineTestSuite) TestGet_NotFound() {
	id := uuid.New()
	suite.repo.EXPECT().GetByID(gomock.Any(), id).Return(nil, errors.New("record not found"))

	// gorm's sentinel is matched via errors.Is; a plain error still fails
	_, err := suite.engine.Get(context.Background(), id)
	assert.Error(suite.T(), err)
}

func (suite *EngineTestSuite) TestGet_CachesItem() {
	row := actionItem("cached", models.ActionItemStatusTodo)
	suite.repo.EXPECT().GetByID(gomock.Any(), row.ID).Return(&row, nil).Times(1)

	first, err := suite.engine.Get(context.Background(), row.ID)
	assert.NoError(suite.T(), err)
	second, err := suite.engine.Get(context.Background(), row.ID)
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), first.Title, second.Title)
}

func (suite *EngineTestSuite) TestCreate_OptimisticVisibleBeforeConfirmation() {
	suite.repo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]models.ActionItem{}, nil)
	_, err := suite.engine.List(context.Background(), nil)
	assert.NoError(suite.T(), err)

	listKey := cache.ListKey(repository.ActionItemDescriptor.Kind, nil)

	suite.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, row *models.ActionItem) error {
			// the optimistic write must land before the network call
			value, _ := suite.cache.Read(listKey)
			cached := value.([]models.ActionItem)
			if assert.Len(suite.T(), cached, 1) {
				assert.Equal(suite.T(), "Review Q2 data", cached[0].Title)
				assert.Equal(suite.T(), models.ActionItemStatusTodo, cached[0].Status)
				assert.NotEqual(suite.T(), uuid.Nil, cached[0].ID)
			}
			row.ID = uuid.New()
			row.CreatedAt = time.Now()
			row.UpdatedAt = time.Now()
			return nil
		})

	created, err := suite.engine.Create(context.Background(), models.ActionItem{
		Title:  "Review Q2 data",
		Status: models.ActionItemStatusTodo,
	})
	assert.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), uuid.Nil, created.ID)

	// commit invalidates the list region so the next read refetches
	_, state := suite.cache.Read(listKey)
	assert.Equal(suite.T(), cache.Stale, state)

	successes, failures := suite.notifier.counts()
	assert.Equal(suite.T(), 1, successes)
	assert.Equal(suite.T(), 0, failures)
}

func (suite *EngineTestSuite) TestCreate_RollbackOnFailure() {
	existing := []models.ActionItem{actionItem("keep me", models.ActionItemStatusDone)}
	suite.repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(existing, nil)
	_, err := suite.engine.List(context.Background(), nil)
	assert.NoError(suite.T(), err)

	suite.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert rejected"))

	_, err = suite.engine.Create(context.Background(), models.ActionItem{Title: "doomed"})
	assert.True(suite.T(), apperrors.IsRemoteCall(err))

	listKey := cache.ListKey(repository.ActionItemDescriptor.Kind, nil)
	value, _ := suite.cache.Read(listKey)
	assert.Equal(suite.T(), existing, value)

	successes, failures := suite.notifier.counts()
	assert.Equal(suite.T(), 0, successes)
	assert.Equal(suite.T(), 1, failures)
}

func (suite *EngineTestSuite) TestUpdate_OptimisticApplyThenCommit() {
	row := actionItem("task", models.ActionItemStatusTodo)
	suite.repo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]models.ActionItem{row}, nil)
	_, err := suite.engine.List(context.Background(), nil)
	assert.NoError(suite.T(), err)

	listKey := cache.ListKey(repository.ActionItemDescriptor.Kind, nil)
	changes := map[string]interface{}{"status": "in_progress"}

	updated := row
	updated.Status = models.ActionItemStatusInProgress
	suite.repo.EXPECT().Update(gomock.Any(), row.ID, changes).DoAndReturn(
		func(ctx context.Context, id uuid.UUID, ch map[string]interface{}) (*models.ActionItem, error) {
			value, _ := suite.cache.Read(listKey)
			cached := value.([]models.ActionItem)
			if assert.Len(suite.T(), cached, 1) {
				assert.Equal(suite.T(), models.ActionItemStatusInProgress, cached[0].Status)
			}
			return &updated, nil
		})

	result, err := suite.engine.Update(context.Background(), row.ID, changes)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ActionItemStatusInProgress, result.Status)

	_, state := suite.cache.Read(listKey)
	assert.Equal(suite.T(), cache.Stale, state)
}

func (suite *EngineTestSuite) TestUpdate_RollbackRestoresExactSnapshot() {
	row := actionItem("task", models.ActionItemStatusTodo)
	original := []models.ActionItem{row}
	suite.repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(original, nil)
	_, err := suite.engine.List(context.Background(), nil)
	assert.NoError(suite.T(), err)

	suite.repo.EXPECT().Update(gomock.Any(), row.ID, gomock.Any()).
		Return(nil, errors.New("write timeout"))

	_, err = suite.engine.Update(context.Background(), row.ID, map[string]interface{}{"status": "in_progress"})
	assert.True(suite.T(), apperrors.IsRemoteCall(err))

	// no partial optimistic state survives
	listKey := cache.ListKey(repository.ActionItemDescriptor.Kind, nil)
	value, _ := suite.cache.Read(listKey)
	assert.Equal(suite.T(), original, value)
	cached := value.([]models.ActionItem)
	assert.Equal(suite.T(), models.ActionItemStatusTodo, cached[0].Status)

	successes, failures := suite.notifier.counts()
	assert.Equal(suite.T(), 0, successes)
	assert.Equal(suite.T(), 1, failures)
}

func (suite *EngineTestSuite) TestDelete_PrunesAndCommits() {
	row := actionItem("to delete", models.ActionItemStatusTodo)
	suite.repo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]models.ActionItem{row}, nil)
	_, err := suite.engine.List(context.Background(), nil)
	assert.NoError(suite.T(), err)

	listKey := cache.ListKey(repository.ActionItemDescriptor.Kind, nil)
	suite.repo.EXPECT().Delete(gomock.Any(), row.ID).DoAndReturn(
		func(ctx context.Context, id uuid.UUID) error {
			value, _ := suite.cache.Read(listKey)
			assert.Len(suite.T(), value.([]models.ActionItem), 0)
			return nil
		})

	id, err := suite.engine.Delete(context.Background(), row.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), row.ID, id)
}

func (suite *EngineTestSuite) TestDelete_SecondDeleteStillSucceeds() {
	id := uuid.New()
	suite.repo.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(2)

	_, err := suite.engine.Delete(context.Background(), id)
	assert.NoError(suite.T(), err)
	_, err = suite.engine.Delete(context.Background(), id)
	assert.NoError(suite.T(), err)
}

func (suite *EngineTestSuite) TestDelete_RollbackOnFailure() {
	row := actionItem("survives", models.ActionItemStatusBlocked)
	original := []models.ActionItem{row}
	suite.repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(original, nil)
	_, err := suite.engine.List(context.Background(), nil)
	assert.NoError(suite.T(), err)

	suite.repo.EXPECT().Delete(gomock.Any(), row.ID).Return(errors.New("permission denied"))

	_, err = suite.engine.Delete(context.Background(), row.ID)
	assert.True(suite.T(), apperrors.IsRemoteCall(err))

	listKey := cache.ListKey(repository.ActionItemDescriptor.Kind, nil)
	value, _ := suite.cache.Read(listKey)
	assert.Equal(suite.T(), original, value)
}

func (suite *EngineTestSuite) TestOverlappingMutations_Serialized() {
	row := actionItem("contended", models.ActionItemStatusTodo)
	suite.repo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]models.ActionItem{row}, nil)
	_, err := suite.engine.List(context.Background(), nil)
	assert.NoError(suite.T(), err)

	firstDispatched := make(chan struct{})
	release := make(chan struct{})
	var order []string
	var orderMu gosync.Mutex

	updated := row
	suite.repo.EXPECT().Update(gomock.Any(), row.ID, gomock.Any()).DoAndReturn(
		func(ctx context.Context, id uuid.UUID, ch map[string]interface{}) (*models.ActionItem, error) {
			orderMu.Lock()
			order = append(order, "first")
			orderMu.Unlock()
			close(firstDispatched)
			<-release
			return nil, errors.New("write timeout")
		})
	suite.repo.EXPECT().Update(gomock.Any(), row.ID, gomock.Any()).DoAndReturn(
		func(ctx context.Context, id uuid.UUID, ch map[string]interface{}) (*models.ActionItem, error) {
			orderMu.Lock()
			order = append(order, "second")
			orderMu.Unlock()
			return &updated, nil
		})

	var wg gosync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = suite.engine.Update(context.Background(), row.ID, map[string]interface{}{"status": "in_progress"})
	}()
	<-firstDispatched
	go func() {
		defer wg.Done()
		_, _ = suite.engine.Update(context.Background(), row.ID, map[string]interface{}{"status": "done"})
	}()

	// second mutation must block until the first reaches a terminal state
	time.Sleep(50 * time.Millisecond)
	orderMu.Lock()
	assert.Equal(suite.T(), []string{"first"}, order)
	orderMu.Unlock()

	close(release)
	wg.Wait()

	orderMu.Lock()
	assert.Equal(suite.T(), []string{"first", "second"}, order)
	orderMu.Unlock()

	// the failed first mutation rolled back without clobbering the second:
	// after both terminate the cache region reflects the second's commit
	// path (stale, awaiting refetch), not the first's snapshot restore
	listKey := cache.ListKey(repository.ActionItemDescriptor.Kind, nil)
	_, state := suite.cache.Read(listKey)
	assert.Equal(suite.T(), cache.Stale, state)
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}
