package checkout

import (
	"booking-checkout/checkout/mocks"
	"booking-checkout/common/errs"
	"booking-checkout/model"
	"booking-checkout/selection"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DiscountResolverTestSuite struct {
	suite.Suite

	backend  *mocks.MockBackend
	resolver *DiscountResolver
}

func (s *DiscountResolverTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.backend = mocks.NewMockBackend(ctrl)
	s.resolver = &DiscountResolver{
		Backend: s.backend,
		Store:   selection.Store{KV: selection.NewMemoryKV()},
	}
}

func TestDiscountResolverTestSuite(t *testing.T) {
	suite.Run(t, new(DiscountResolverTestSuite))
}

func discountTestEvent() model.EventResponse {
	return model.EventResponse{
		Id:       "evt-1",
		SellerId: "seller-1",
		Slug:     "summer-fest",
		TicketTypes: []model.TicketType{
			{Code: "std", Label: "Standard", Price: 100},
		},
	}
}

func (s *DiscountResolverTestSuite) TestApplyReplacesExistingDiscount() {
	event := discountTestEvent()
	state := model.CheckoutState{
		Discount: &model.AppliedDiscount{Code: "OLD", Type: model.DiscountTypeFlat, Amount: 5},
	}

	applied := model.AppliedDiscount{Code: "SAVE20", Type: model.DiscountTypeFlat, Amount: 20, Currency: "INR"}
	s.backend.EXPECT().ValidateDiscount(gomock.Any(), gomock.Any()).Return(applied, nil)

	state, err := s.resolver.Apply(context.Background(), event, state, "SAVE20")
	s.NoError(err)
	s.Equal(&applied, state.Discount)

	// persisted for the next page load
	stored, found, err := s.resolver.Store.Get(context.Background(), "seller-1", "summer-fest")
	s.NoError(err)
	s.True(found)
	s.Equal(&applied, stored.Discount)
}

func (s *DiscountResolverTestSuite) TestRejectionKeepsExistingDiscount() {
	event := discountTestEvent()
	existing := &model.AppliedDiscount{Code: "OLD", Type: model.DiscountTypeFlat, Amount: 5}
	state := model.CheckoutState{Discount: existing}

	rejection := &errs.HttpError{Code: http.StatusUnprocessableEntity, Message: "Discount code expired"}
	s.backend.EXPECT().ValidateDiscount(gomock.Any(), gomock.Any()).Return(model.AppliedDiscount{}, rejection)

	state, err := s.resolver.Apply(context.Background(), event, state, "EXPIRED")
	s.Equal(rejection, err)
	s.Equal(existing, state.Discount)
}

func (s *DiscountResolverTestSuite) TestApplyWhilePendingIsNoOp() {
	event := discountTestEvent()

	key := selection.Key("seller-1", "summer-fest")
	s.True(s.resolver.guards.begin(key))
	defer s.resolver.guards.finish(key, false)

	_, err := s.resolver.Apply(context.Background(), event, model.CheckoutState{}, "SAVE20")
	s.Equal(ErrValidationPending, err)
}

func (s *DiscountResolverTestSuite) TestRemoveClearsDiscount() {
	event := discountTestEvent()
	state := model.CheckoutState{
		Discount: &model.AppliedDiscount{Code: "SAVE20", Type: model.DiscountTypeFlat, Amount: 20},
	}

	state, err := s.resolver.Remove(context.Background(), event, state)
	s.NoError(err)
	s.Nil(state.Discount)

	stored, found, err := s.resolver.Store.Get(context.Background(), "seller-1", "summer-fest")
	s.NoError(err)
	s.True(found)
	s.Nil(stored.Discount)
}
