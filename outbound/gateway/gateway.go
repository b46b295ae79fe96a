package gateway

import (
	"net/url"

	"github.com/spf13/viper"
)

// Gateway is the opaque hop to the hosted payment flow. The storefront
// only ever builds the redirect: hand the session handle over, tell the
// gateway where to send the user back, and let the hosted pages do the
// rest.
type Gateway struct {
	CheckoutURL string
}

func New(cfg *viper.Viper) *Gateway {
	return &Gateway{CheckoutURL: cfg.GetString("gateway.checkout_url")}
}

// RedirectURL builds the hosted-checkout URL for a payment session.
// The return URL already carries the order id so the status page can
// pick it up after the gateway sends the user back.
func (g *Gateway) RedirectURL(sessionId, returnUrl string) string {
	q := url.Values{}
	q.Set("session_id", sessionId)
	q.Set("return_url", returnUrl)

	return g.CheckoutURL + "?" + q.Encode()
}
