package qr

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/draw"
)

// Options controls QR rendering.
type Options struct {
	Level  qrcode.RecoveryLevel
	Margin int // quiet zone, in modules
	Scale  int // pixels per module
}

// DefaultOptions are tuned for phone banking apps scanning from a screen.
var DefaultOptions = Options{
	Level:  qrcode.Medium,
	Margin: 1,
	Scale:  6,
}

// Renderer turns a payload into a PNG data URL.
type Renderer struct {
	opts Options
}

// NewRenderer returns a Renderer with the given options.
func NewRenderer(opts Options) *Renderer {
	if opts.Scale <= 0 {
		opts.Scale = DefaultOptions.Scale
	}
	if opts.Margin < 0 {
		opts.Margin = 0
	}
	return &Renderer{opts: opts}
}

// PNG encodes content as a QR code PNG.
func (r *Renderer) PNG(content string) ([]byte, error) {
	code, err := qrcode.New(content, r.opts.Level)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	code.DisableBorder = true

	symbol := code.Image(-r.opts.Scale)
	pad := r.opts.Margin * r.opts.Scale
	b := symbol.Bounds()

	canvas := image.NewRGBA(image.Rect(0, 0, b.Dx()+2*pad, b.Dy()+2*pad))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(canvas, b.Add(image.Pt(pad, pad)), symbol, b.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURL renders content and wraps the PNG as a data: URL for direct
// use in an <img src>.
func (r *Renderer) DataURL(content string) (string, error) {
	img, err := r.PNG(content)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(img), nil
}
