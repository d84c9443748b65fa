package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

// DefaultQRGenerator encodes the order's API link behind the gateway.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) OrderURL(orderID int) string {
	return fmt.Sprintf("%s/api/orders/%d", g.BaseURL, orderID)
}

func (g DefaultQRGenerator) Generate(orderID int) ([]byte, error) {
	return qrcode.Encode(g.OrderURL(orderID), qrcode.Medium, 256)
}
