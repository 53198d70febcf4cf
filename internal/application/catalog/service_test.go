package catalog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/turtacn/MacBench/internal/domain/machine"
	"github.com/turtacn/MacBench/internal/domain/view"
	"github.com/turtacn/MacBench/internal/infrastructure/dataset"
	"github.com/turtacn/MacBench/pkg/errors"
)

type ServiceTestSuite struct {
	suite.Suite
	repo *mockRepository
	svc  Service
	ctx  context.Context
}

func (s *ServiceTestSuite) SetupTest() {
	s.repo = new(mockRepository)
	s.svc = NewService(s.repo, nil, nil, &ServiceConfig{CurrentYear: 2025})
	s.ctx = context.Background()
}

func (s *ServiceTestSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
}

func (s *ServiceTestSuite) TestList() {
	s.repo.On("List", s.ctx).Return(fixture(), nil)

	st := view.Default()
	st.Sort = view.SortPrice
	res, err := s.svc.List(s.ctx, st)
	s.Require().NoError(err)
	s.Equal([]string{"a", "c", "d", "b"}, ids(res.Rows))
	s.Equal(4, res.Count)
	s.Equal(4, res.Total)
	s.Equal("sort=price", res.Query)
	s.Equal(2, res.Facets.Types["laptop"])
}

func (s *ServiceTestSuite) TestList_NormalizesState() {
	s.repo.On("List", s.ctx).Return(fixture(), nil)

	res, err := s.svc.List(s.ctx, view.State{Sort: "nope", Scenario: "gaming", ShowReference: true})
	s.Require().NoError(err)
	s.Equal(view.SortScore, res.State.Sort)
	s.Equal(machine.ScenarioBalanced, res.State.Scenario)
	s.Equal(5, res.Total)
	s.Equal("ref=1", res.Query)
}

func (s *ServiceTestSuite) TestList_RepositoryError() {
	s.repo.On("List", s.ctx).Return(nil, fmt.Errorf("disk gone"))
	_, err := s.svc.List(s.ctx, view.Default())
	s.Error(err)
}

func (s *ServiceTestSuite) TestGet() {
	s.repo.On("FindByID", s.ctx, "a").Return(fixture()[0], nil)

	d, err := s.svc.Get(s.ctx, "a", machine.Scenario("???"))
	s.Require().NoError(err)
	s.Equal(9610, d.Row.Score)
	s.Equal(machine.ScenarioBalanced, d.Breakdown.Scenario)
	s.Equal(9610, d.Breakdown.Score)
	s.Equal(1, d.Estimates.Age)
	s.Equal(2999.0, d.Estimates.TradeIn)
}

func (s *ServiceTestSuite) TestGet_NotFound() {
	notFound := errors.New(errors.ErrCodeMachineNotFound, "machine not found")
	s.repo.On("FindByID", s.ctx, "zzz").Return(machine.Machine{}, notFound)
	_, err := s.svc.Get(s.ctx, "zzz", machine.ScenarioBalanced)
	s.True(errors.IsNotFound(err))
}

func (s *ServiceTestSuite) TestCompare() {
	recs := fixture()
	s.repo.On("FindByID", s.ctx, "a").Return(recs[0], nil)
	s.repo.On("FindByID", s.ctx, "b").Return(recs[1], nil)

	c, err := s.svc.Compare(s.ctx, []string{"a", "b"}, machine.ScenarioDeveloper)
	s.Require().NoError(err)
	s.Equal(machine.ScenarioDeveloper, c.Scenario)
	s.Equal("a", c.Left.ID)
}

func (s *ServiceTestSuite) TestCompare_InvalidIDsSkipRepository() {
	_, err := s.svc.Compare(s.ctx, []string{"a"}, machine.ScenarioBalanced)
	s.True(errors.IsCode(err, errors.ErrCodeCompareIncomplete))
	s.repo.AssertNotCalled(s.T(), "FindByID", mock.Anything, mock.Anything)
}

func (s *ServiceTestSuite) TestCompare_UnknownID() {
	recs := fixture()
	notFound := errors.New(errors.ErrCodeMachineNotFound, "machine not found")
	s.repo.On("FindByID", s.ctx, "a").Return(recs[0], nil)
	s.repo.On("FindByID", s.ctx, "zzz").Return(machine.Machine{}, notFound)

	_, err := s.svc.Compare(s.ctx, []string{"a", "zzz"}, machine.ScenarioBalanced)
	s.True(errors.IsCode(err, errors.ErrCodeMachineNotFound))
}

func (s *ServiceTestSuite) TestEstimate() {
	res, err := s.svc.Estimate(&EstimateRequest{Price: 1000, Year: 2025})
	s.Require().NoError(err)
	s.Equal(850.0, res.TradeIn)
	s.Equal(900.0, res.Refurbished)
	s.Equal(2025, res.CurrentYear)

	res, err = s.svc.Estimate(&EstimateRequest{Price: 1000, Year: 2022})
	s.Require().NoError(err)
	s.Equal(3, res.Age)
	s.Equal(542.0, res.TradeIn)
	s.Equal(650.0, res.Refurbished)
}

func (s *ServiceTestSuite) TestEstimate_Invalid() {
	for _, req := range []*EstimateRequest{nil, {Price: -1, Year: 2020}, {Price: 100, Year: 0}} {
		_, err := s.svc.Estimate(req)
		s.True(errors.IsCode(err, errors.ErrCodeEstimateInputError))
	}
}

func (s *ServiceTestSuite) TestScenarios() {
	sc := s.svc.Scenarios()
	s.Require().Len(sc, 4)
	s.Equal(machine.ScenarioBalanced, sc[0].Name)
	s.True(sc[0].Default)
	s.Equal(55, sc[1].Weights.Multi)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func TestService_CurrentYearFromClock(t *testing.T) {
	svc := NewService(new(mockRepository), nil, nil, &ServiceConfig{
		Now: func() time.Time { return time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC) },
	})
	assert.Equal(t, 2031, svc.CurrentYear())
}

func TestService_EmbeddedDataset(t *testing.T) {
	repo := dataset.NewRepository(dataset.MustEmbedded())
	svc := NewService(repo, nil, nil, &ServiceConfig{CurrentYear: 2025})
	ctx := context.Background()

	res, err := svc.List(ctx, view.Default())
	require.NoError(t, err)
	require.NotEmpty(t, res.Rows)
	assert.Equal(t, res.Total, res.Count)
	for _, r := range res.Rows {
		assert.False(t, r.IsReference)
	}
	for i := 1; i < len(res.Rows); i++ {
		assert.GreaterOrEqual(t, res.Rows[i-1].Score, res.Rows[i].Score)
	}

	cmp, err := svc.Compare(ctx, []string{"mbp16-m4max-2024", "mba13-m4-2025"}, machine.ScenarioBalanced)
	require.NoError(t, err)
	assert.Equal(t, 9610, cmp.Left.Score)
}
