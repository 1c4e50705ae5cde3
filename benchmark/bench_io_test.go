package benchmark

import (
	"bytes"
	"testing"

	easyio "github.com/dzonerzy/go-easyopt/io"
)

// Category: io

func BenchmarkIO_Colorize(b *testing.B) {
	io := easyio.New().ForceColor()
	s := "hello world"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = io.Colorize(s, "31") // red
	}
}

func BenchmarkIO_Styling(b *testing.B) {
	io := easyio.New().ForceColorLevel(3)
	s := "hello world"
	b.Run("Bold", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = io.Bold(s)
		}
	})
	b.Run("Truecolor", func(b *testing.B) {
		style := easyio.NewStyle().Fg(easyio.Truecolor(255, 128, 0)).Underline()
		for i := 0; i < b.N; i++ {
			_ = style.Sprint(io, s)
		}
	})
}

func BenchmarkLogger_Error(b *testing.B) {
	buf := &bytes.Buffer{}
	logger := easyio.NewLogger(easyio.New().WithErr(buf).NoColor())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Error("option --%s is not defined", "colr")
		buf.Reset()
	}
}
