package model

import (
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
)

// Bar shows how many edges of the board have been claimed.
type Bar progressbar.ProgressBar

func NewBar(len int, description string, w io.Writer) *Bar {
	return (*Bar)(progressbar.NewOptions(len,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	))
}

func (b *Bar) Describe(description string) {
	(*progressbar.ProgressBar)(b).Describe(description)
}

func (b *Bar) Goto(i int) error {
	return (*progressbar.ProgressBar)(b).Set(i)
}

// Reset rewinds the bar for a new game.
func (b *Bar) Reset() {
	(*progressbar.ProgressBar)(b).Reset()
}

func (b *Bar) Current() int {
	return int((*progressbar.ProgressBar)(b).State().CurrentBytes)
}

func (b *Bar) Close() error {
	return (*progressbar.ProgressBar)(b).Close()
}
