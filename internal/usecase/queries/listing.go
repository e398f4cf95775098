package queries

import "context"

type DealerView struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Latitude  *string `json:"latitude"`
	Longitude *string `json:"longitude"`
}

// ListingView is the flat display record the frontend renders as a card.
type ListingView struct {
	Year        int32      `json:"year"`
	MSRP        int64      `json:"msrp"`
	Price       int64      `json:"price"`
	Images      []string   `json:"images"`
	Dealer      DealerView `json:"dealer"`
	ListingURL  string     `json:"listingUrl"`
	Color       string     `json:"color"`
	Trim        string     `json:"trim"`
	VIN         string     `json:"vin"`
	StockNumber string     `json:"stockNumber"`
	Model       string     `json:"model"`
}

type ListingSearchParams struct {
	ZipCode     string
	Make        string
	Model       string
	RadiusMiles int32
}

// ListingSearcher is the aggregator gateway. It returns listings as the
// vendor reports them, including zero-priced ones.
type ListingSearcher interface {
	Search(ctx context.Context, params ListingSearchParams) ([]*ListingView, error)
}

type ListingQueries interface {
	SearchListings(ctx context.Context, params ListingSearchParams) ([]*ListingView, error)
}

type listingQueriesImpl struct {
	searcher ListingSearcher
}

func NewListingQueries(searcher ListingSearcher) ListingQueries {
	return &listingQueriesImpl{searcher: searcher}
}

// SearchListings is a stateless transform: no retries, no caching, no
// pagination. Listings without a real asking price are dropped.
func (q *listingQueriesImpl) SearchListings(ctx context.Context, params ListingSearchParams) ([]*ListingView, error) {
	listings, err := q.searcher.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	filtered := make([]*ListingView, 0, len(listings))
	for _, l := range listings {
		if l.Price == 0 {
			continue
		}
		filtered = append(filtered, l)
	}
	return filtered, nil
}
