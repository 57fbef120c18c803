package service

// QRCodeService generates QR code images.
type QRCodeService interface {
	// GeneratePNG encodes the content into a QR code PNG.
	GeneratePNG(content string) ([]byte, error)
}
