//go:build unit

package api_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"carmommy/internal/handler/api"
	"carmommy/internal/pkg/ptr"
	"carmommy/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type fakePaymentCommands struct {
	result       commands.VerifyResult
	lastSig      string
	lastMerchant string
}

func (f *fakePaymentCommands) Verify(_ context.Context, signature, merchantAddress string) commands.VerifyResult {
	f.lastSig = signature
	f.lastMerchant = merchantAddress
	return f.result
}

type PaymentHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	payments *fakePaymentCommands
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.payments = &fakePaymentCommands{}
	h := api.NewPaymentHandler(s.payments)
	s.router.POST("/api/payments/verify", h.Verify)
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) post(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/payments/verify", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *PaymentHandlerTestSuite) TestValidPayment() {
	s.payments.result = commands.VerifyResult{
		Valid:     true,
		Message:   "Payment verified successfully",
		AmountSOL: ptr.Of(0.001),
	}

	w := s.post(`{"signature": "sig123", "merchantAddress": "merchant123"}`)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"valid":true`)
	s.Contains(w.Body.String(), "Payment verified successfully")
	s.Equal("sig123", s.payments.lastSig)
	s.Equal("merchant123", s.payments.lastMerchant)
}

func (s *PaymentHandlerTestSuite) TestFailedVerificationIsStillHTTP200() {
	s.payments.result = commands.VerifyResult{
		Valid:   false,
		Message: "This payment has already been used",
	}

	w := s.post(`{"signature": "sig123", "merchantAddress": "merchant123"}`)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"valid":false`)
	s.Contains(w.Body.String(), "already been used")
}

func (s *PaymentHandlerTestSuite) TestMissingFieldsRejected() {
	w := s.post(`{"signature": "sig123"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Empty(s.payments.lastSig)
}
