package constant

const (
	ActivityStreamName = "booking_checkout_activity_stream"
)

const (
	AllWildcard      = "activity.>"
	CheckoutWildcard = "activity.checkout.>"
	PaymentWildcard  = "activity.payment.>"

	SubjectCheckoutCompleted = "activity.checkout.completed"
	SubjectPaymentSettled    = "activity.payment.settled"
)
