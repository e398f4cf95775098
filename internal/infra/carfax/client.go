package carfax

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"carmommy/internal/pkg/config"
	"carmommy/internal/pkg/errs"
	"carmommy/internal/usecase/queries"
)

// Client queries the Carfax vehicle search API. Unauthenticated vendor REST
// with no Go SDK; one attempt per search, no caching.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.CarfaxConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

type searchResponse struct {
	Listings []listing `json:"listings"`
}

type listing struct {
	Year         int32  `json:"year"`
	MSRP         int64  `json:"msrp"`
	CurrentPrice int64  `json:"currentPrice"`
	Images       *struct {
		Large []string `json:"large"`
	} `json:"images"`
	Dealer *struct {
		Name      *string `json:"name"`
		Phone     *string `json:"phone"`
		Address   *string `json:"address"`
		Latitude  *string `json:"latitude"`
		Longitude *string `json:"longitude"`
	} `json:"dealer"`
	VdpURL        string `json:"vdpUrl"`
	ExteriorColor string `json:"exteriorColor"`
	Trim          string `json:"trim"`
	VIN           string `json:"vin"`
	StockNumber   string `json:"stockNumber"`
	Model         string `json:"model"`
}

func (c *Client) Search(ctx context.Context, params queries.ListingSearchParams) ([]*queries.ListingView, error) {
	q := url.Values{}
	q.Set("zip", params.ZipCode)
	q.Set("radius", strconv.Itoa(int(params.RadiusMiles)))
	q.Set("sort", "BEST")
	q.Set("make", params.Make)
	q.Set("model", params.Model)
	q.Set("certified", "false")
	q.Set("vehicleCondition", "NEW")
	q.Set("rows", "24")
	q.Set("mpgCombinedMin", "0")
	q.Set("dynamicRadius", "false")
	q.Set("fetchImageLimit", "6")
	q.Set("tpPositions", "1,2,3")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/search/v2/vehicles?"+q.Encode(), nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build search request")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "carfax request failed")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read carfax response")
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, errs.New("Carfax API error: " + res.Status)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errs.Wrap(err, "failed to decode carfax response")
	}

	views := make([]*queries.ListingView, len(parsed.Listings))
	for i, l := range parsed.Listings {
		views[i] = toView(l)
	}
	return views, nil
}

func toView(l listing) *queries.ListingView {
	view := &queries.ListingView{
		Year:        l.Year,
		MSRP:        l.MSRP,
		Price:       l.CurrentPrice,
		Images:      []string{},
		ListingURL:  l.VdpURL,
		Color:       l.ExteriorColor,
		Trim:        l.Trim,
		VIN:         l.VIN,
		StockNumber: l.StockNumber,
		Model:       l.Model,
	}
	if l.Images != nil && l.Images.Large != nil {
		view.Images = l.Images.Large
	}
	if l.Dealer != nil {
		view.Dealer = queries.DealerView{
			Name:      l.Dealer.Name,
			Phone:     l.Dealer.Phone,
			Address:   l.Dealer.Address,
			Latitude:  l.Dealer.Latitude,
			Longitude: l.Dealer.Longitude,
		}
	}
	return view
}
