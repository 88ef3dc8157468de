package view

import "strings"

// DefaultIcon is used for payments without a method or with a method we
// have no asset for.
const DefaultIcon = "icons/payment.png"

var methodIcons = map[string]string{
	"applepay":     "icons/applepay.png",
	"bancontact":   "icons/bancontact.png",
	"banktransfer": "icons/banktransfer.png",
	"belfius":      "icons/belfius.png",
	"creditcard":   "icons/creditcard.png",
	"directdebit":  "icons/directdebit.png",
	"eps":          "icons/eps.png",
	"giftcard":     "icons/giftcard.png",
	"ideal":        "icons/ideal.png",
	"kbc":          "icons/kbc.png",
	"klarna":       "icons/klarna.png",
	"paypal":       "icons/paypal.png",
	"paysafecard":  "icons/paysafecard.png",
	"przelewy24":   "icons/przelewy24.png",
	"sofort":       "icons/sofort.png",
}

// MethodIcon resolves a payment method to an icon reference,
// case-insensitively, with a generic default for unknown methods.
func MethodIcon(method string) string {
	if icon, ok := methodIcons[strings.ToLower(method)]; ok {
		return icon
	}
	return DefaultIcon
}
