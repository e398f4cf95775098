//go:build unit

package api_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"carmommy/internal/handler/api"
	"carmommy/internal/pkg/errs"
	"carmommy/internal/pkg/ptr"
	"carmommy/internal/usecase/commands"
	"carmommy/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type fakeCallCommands struct {
	result *commands.RequestCallResult
	err    error
	inputs []commands.RequestCallInput
}

func (f *fakeCallCommands) RequestCall(_ context.Context, input commands.RequestCallInput) (*commands.RequestCallResult, error) {
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeCallQueries struct {
	existing *queries.ExistingCallView
	deals    []queries.DealView
	err      error
}

func (f *fakeCallQueries) CheckExistingCall(_ context.Context, _ string) (*queries.ExistingCallView, error) {
	return f.existing, f.err
}

func (f *fakeCallQueries) CompetitiveDeals(_ context.Context, _, _ string) ([]queries.DealView, error) {
	return f.deals, f.err
}

type CallHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *fakeCallCommands
	queries  *fakeCallQueries
}

func (s *CallHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.commands = &fakeCallCommands{
		result: &commands.RequestCallResult{CallSID: "CA123", ConversationID: "conv_abc"},
	}
	s.queries = &fakeCallQueries{}
	h := api.NewCallHandler(s.commands, s.queries)

	s.router.POST("/api/calls", h.RequestCall)
	s.router.GET("/api/calls/existing", h.CheckExistingCall)
	s.router.GET("/api/deals", h.CompetitiveDeals)
}

func TestCallHandlerSuite(t *testing.T) {
	suite.Run(t, new(CallHandlerTestSuite))
}

const validCallBody = `{
	"vin": "1HGCM82633A004352",
	"year": 2024,
	"make": "Honda",
	"model": "Accord",
	"zipcode": 94103,
	"dealer_name": "Bay Honda",
	"listing_price": 29500,
	"phone_number": "+14155550134",
	"paymentSignature": "sig123"
}`

func (s *CallHandlerTestSuite) postCall(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/calls", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *CallHandlerTestSuite) TestRequestCallCreated() {
	w := s.postCall(validCallBody)

	s.Equal(http.StatusCreated, w.Code)
	s.Contains(w.Body.String(), "CA123")
	s.Contains(w.Body.String(), "conv_abc")
	s.Require().Len(s.commands.inputs, 1)
	s.Equal("1HGCM82633A004352", s.commands.inputs[0].VIN)
}

func (s *CallHandlerTestSuite) TestRequestCallMissingFieldsRejected() {
	w := s.postCall(`{"vin": "1HGCM82633A004352"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Empty(s.commands.inputs)
}

func (s *CallHandlerTestSuite) TestInvalidPaymentReturns402() {
	s.commands.err = errs.Mark(errs.New("Transaction not found on devnet"), errs.ErrPaymentInvalid)

	w := s.postCall(validCallBody)

	s.Equal(http.StatusPaymentRequired, w.Code)
	s.Contains(w.Body.String(), "Transaction not found on devnet")
}

func (s *CallHandlerTestSuite) TestVendorFailureReturns502() {
	s.commands.err = errs.Mark(errs.New("upstream error"), errs.ErrVendorCallFailed)

	w := s.postCall(validCallBody)

	s.Equal(http.StatusBadGateway, w.Code)
}

func (s *CallHandlerTestSuite) TestCheckExistingCallFound() {
	s.queries.existing = &queries.ExistingCallView{
		ID:             uuid.New(),
		Status:         "quoted",
		ConfirmedPrice: ptr.Of(28100.0),
	}

	req := httptest.NewRequest(http.MethodGet, "/api/calls/existing?vin=1HGCM82633A004352", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"status":"quoted"`)
}

func (s *CallHandlerTestSuite) TestCheckExistingCallNoneReturnsNull() {
	req := httptest.NewRequest(http.MethodGet, "/api/calls/existing?vin=1HGCM82633A004352", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("null", w.Body.String())
}

func (s *CallHandlerTestSuite) TestCheckExistingCallRequiresVin() {
	req := httptest.NewRequest(http.MethodGet, "/api/calls/existing", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *CallHandlerTestSuite) TestDealsRequireMakeAndModel() {
	req := httptest.NewRequest(http.MethodGet, "/api/deals?make=Honda", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *CallHandlerTestSuite) TestDealsReturnedAsJSON() {
	s.queries.deals = []queries.DealView{
		{DealerName: "Bay Honda", ConfirmedPrice: 28100},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/deals?make=Honda&model=Accord", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"dealerName":"Bay Honda"`)
	s.Contains(w.Body.String(), `"confirmedPrice":28100`)
}
