package utils

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/skip2/go-qrcode"
)

// QRConfig carries the rendering parameters read from settings.
type QRConfig struct {
	Version   int // forced symbol version, 0 = auto
	Level     qrcode.RecoveryLevel
	BoxSize   int // pixels per module
	Border    int // 0 disables the quiet zone
	Fit       bool
	Color     color.Color
	BackColor color.Color
}

// RecoveryLevelFromSetting maps the stored error-correction value onto
// go-qrcode levels. The integers already live in deployed settings tables
// and must keep their historical meaning: 1=L, 0=M, 3=Q, 2=H.
func RecoveryLevelFromSetting(value int) qrcode.RecoveryLevel {
	switch value {
	case 1:
		return qrcode.Low
	case 3:
		return qrcode.High
	case 2:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateQRCode renders the payload into a PNG.
func GenerateQRCode(content string, cfg QRConfig) ([]byte, error) {
	var qr *qrcode.QRCode
	var err error
	if cfg.Version > 0 && !cfg.Fit {
		qr, err = qrcode.NewWithForcedVersion(content, cfg.Version, cfg.Level)
	} else {
		qr, err = qrcode.New(content, cfg.Level)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Color != nil {
		qr.ForegroundColor = cfg.Color
	}
	if cfg.BackColor != nil {
		qr.BackgroundColor = cfg.BackColor
	}
	if cfg.Border == 0 {
		qr.DisableBorder = true
	}

	boxSize := cfg.BoxSize
	if boxSize <= 0 {
		boxSize = 10
	}
	// Negative size renders at a fixed scale per module instead of a fixed
	// image size.
	return qr.PNG(-boxSize)
}

// ParseColor accepts a few common color names and #RRGGBB hex.
func ParseColor(s string) color.Color {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "black":
		return color.Black
	case "white":
		return color.White
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.TrimPrefix(s, "#"), "%02x%02x%02x", &r, &g, &b); err == nil {
		return color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return color.Black
}
