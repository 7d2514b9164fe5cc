package service

import (
	"strings"

	"fusion-kitchen/kitchen-svc/internal/domain"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID domain.UUID) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

// TrackingURL is the public page a guest opens to follow the order.
func (g DefaultQRGenerator) TrackingURL(orderID domain.UUID) string {
	return strings.TrimRight(g.BaseURL, "/") + "/orders/" + string(orderID)
}

func (g DefaultQRGenerator) Generate(orderID domain.UUID) ([]byte, error) {
	return qrcode.Encode(g.TrackingURL(orderID), qrcode.Medium, 256)
}
