//go:build unit

package queries_test

import (
	"context"
	"testing"

	"carmommy/internal/pkg/errs"
	"carmommy/internal/usecase/queries"

	"github.com/stretchr/testify/suite"
)

type fakeListingSearcher struct {
	listings []*queries.ListingView
	err      error
	last     queries.ListingSearchParams
}

func (f *fakeListingSearcher) Search(_ context.Context, params queries.ListingSearchParams) ([]*queries.ListingView, error) {
	f.last = params
	if f.err != nil {
		return nil, f.err
	}
	return f.listings, nil
}

type ListingQueriesTestSuite struct {
	suite.Suite
	searcher *fakeListingSearcher
	q        queries.ListingQueries
}

func (s *ListingQueriesTestSuite) SetupTest() {
	s.searcher = &fakeListingSearcher{}
	s.q = queries.NewListingQueries(s.searcher)
}

func TestListingQueriesSuite(t *testing.T) {
	suite.Run(t, new(ListingQueriesTestSuite))
}

func (s *ListingQueriesTestSuite) TestZeroPricedListingsFiltered() {
	s.searcher.listings = []*queries.ListingView{
		{VIN: "VIN1", Price: 28990},
		{VIN: "VIN2", Price: 0},
		{VIN: "VIN3", Price: 31445},
	}

	listings, err := s.q.SearchListings(context.Background(), queries.ListingSearchParams{
		ZipCode: "94103", Make: "Honda", Model: "Accord", RadiusMiles: 50,
	})

	s.Require().NoError(err)
	s.Require().Len(listings, 2)
	s.Equal("VIN1", listings[0].VIN)
	s.Equal("VIN3", listings[1].VIN)
}

func (s *ListingQueriesTestSuite) TestEmptyResultIsNotAnError() {
	listings, err := s.q.SearchListings(context.Background(), queries.ListingSearchParams{
		ZipCode: "94103", Make: "Honda", Model: "Accord",
	})

	s.Require().NoError(err)
	s.Empty(listings)
}

func (s *ListingQueriesTestSuite) TestSearcherErrorPropagates() {
	s.searcher.err = errs.New("upstream 503")

	_, err := s.q.SearchListings(context.Background(), queries.ListingSearchParams{
		ZipCode: "94103", Make: "Honda", Model: "Accord",
	})

	s.Require().Error(err)
}

func (s *ListingQueriesTestSuite) TestParamsPassedThrough() {
	_, err := s.q.SearchListings(context.Background(), queries.ListingSearchParams{
		ZipCode: "60601", Make: "Toyota", Model: "Camry", RadiusMiles: 25,
	})

	s.Require().NoError(err)
	s.Equal("60601", s.searcher.last.ZipCode)
	s.Equal(int32(25), s.searcher.last.RadiusMiles)
}
