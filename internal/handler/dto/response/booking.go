package response

import (
	"time"

	"consultbook/internal/usecase/commands"
	"consultbook/internal/usecase/queries"
	"consultbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	Status      string    `json:"status"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	ServiceType string    `json:"serviceType"`
	PriceCents  int64     `json:"priceCents"`
	PaymentRef  string    `json:"paymentRef,omitempty"`
	Discounted  bool      `json:"discounted,omitempty"`
}

func FromCommitResult(result *commands.CommitBookingResult) *BookingResponse {
	b := result.Booking
	return &BookingResponse{
		ID:          b.ID(),
		Status:      b.Status().String(),
		Start:       b.Interval().Start(),
		End:         b.Interval().End(),
		ServiceType: b.ServiceType(),
		PriceCents:  result.FinalPrice,
		PaymentRef:  result.PaymentRef,
		Discounted:  result.Discounted,
	}
}

func FromStatusView(view *queries.BookingStatusView) *BookingResponse {
	return &BookingResponse{
		ID:          view.ID,
		Status:      view.Status,
		Start:       view.Start,
		End:         view.End,
		ServiceType: view.ServiceType,
		PriceCents:  view.PriceCents,
	}
}

type BookingListItem struct {
	ID           uuid.UUID `json:"id"`
	ConsultantID uuid.UUID `json:"consultantId"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	ServiceType  string    `json:"serviceType"`
	Status       string    `json:"status"`
	PriceCents   int64     `json:"priceCents"`
	CouponCode   *string   `json:"couponCode,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromBookingView(view shared.BookingView) BookingListItem {
	var item BookingListItem
	_ = copier.Copy(&item, &view)
	return item
}

func FromBookingViews(views []shared.BookingView) []BookingListItem {
	out := make([]BookingListItem, len(views))
	for i, v := range views {
		out[i] = FromBookingView(v)
	}
	return out
}
