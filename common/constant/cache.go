package constant

import "time"

const (
	CheckoutStateKey     = "checkout:%s:%s"
	OrderVerifyOnceKey   = "order:%s:verify_once"
	OrderVerifyResultKey = "order:%s:verify_result"
)

const (
	OrderVerifyResultDefaultTTL = 30 * time.Minute
)
