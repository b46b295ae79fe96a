package http

import (
	"booking-checkout/checkout"
	"booking-checkout/checkout/mocks"
	"booking-checkout/common/constant"
	"booking-checkout/common/errs"
	jetstreamMocks "booking-checkout/common/jetstream/mocks"
	"booking-checkout/model"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type OrderHttpTestSuite struct {
	suite.Suite

	Cfg *viper.Viper

	Backend   *mocks.MockBackend
	Publisher *jetstreamMocks.MockPublisher
	CacheMock redismock.ClientMock

	orderHttp *OrderHttp
}

func (s *OrderHttpTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.Backend = mocks.NewMockBackend(ctrl)
	s.Publisher = jetstreamMocks.NewMockPublisher(ctrl)

	db, cacheMock := redismock.NewClientMock()
	s.CacheMock = cacheMock

	s.Cfg = viper.New()
	s.Cfg.Set("pricing.tax_percent", 5)

	s.orderHttp = RegisterOrderHttp(
		http.NewServeMux(),
		s.Cfg,
		s.Backend,
		&checkout.Poller{
			Backend:   s.Backend,
			Cache:     db,
			Publisher: s.Publisher,
			ResultTTL: time.Minute,
		},
		message.NewPrinter(language.MustParse("en-IN")),
	)
}

func (s *OrderHttpTestSuite) TearDownTest() {
	s.NoError(s.CacheMock.ExpectationsWereMet())
}

func TestOrderHttpTestSuite(t *testing.T) {
	suite.Run(t, new(OrderHttpTestSuite))
}

func (s *OrderHttpTestSuite) TestStatusMissingOrderId() {
	req := httptest.NewRequest(http.MethodGet, "/api/payments/status", nil)
	w := httptest.NewRecorder()

	s.orderHttp.status(w, req)

	// a broken return URL is a terminal display state, never a 4xx
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"status":"FAILED"`)
	s.Contains(w.Body.String(), checkout.MsgMissingOrderId)
}

func (s *OrderHttpTestSuite) TestStatusServedFromCache() {
	resultKey := fmt.Sprintf(constant.OrderVerifyResultKey, "ord-1")
	s.CacheMock.ExpectGet(resultKey).SetVal(`{"order_id":"ord-1","status":"SUCCESS"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/payments/status?order_id=ord-1", nil)
	w := httptest.NewRecorder()

	s.orderHttp.status(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"status":"SUCCESS"`)
}

func (s *OrderHttpTestSuite) TestSummary() {
	tests := []struct {
		name           string
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "not found",
			setupMock: func() {
				s.Backend.EXPECT().OrderSummary(gomock.Any(), "ord-1").
					Return(model.OrderSummaryResponse{}, errs.NotFound("Order not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Order not found"}`,
		},
		{
			name: "success reconstructs subtotal and tax",
			setupMock: func() {
				s.Backend.EXPECT().OrderSummary(gomock.Any(), "ord-1").
					Return(model.OrderSummaryResponse{
						OrderId:     "ord-1",
						EventTitle:  "Summer Fest",
						TotalAmount: 105,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"subtotal":100,"tax":5,"total_formatted":"₹105.00"`,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMock()

			req := httptest.NewRequest(http.MethodGet, "/api/orders/ord-1/summary", nil)
			req.SetPathValue("orderId", "ord-1")
			w := httptest.NewRecorder()

			s.orderHttp.summary(w, req)

			s.Equal(tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusOK {
				s.Contains(w.Body.String(), tc.expectedBody)
			} else {
				s.Equal(tc.expectedBody, strings.TrimSpace(w.Body.String()))
			}
		})
	}
}
