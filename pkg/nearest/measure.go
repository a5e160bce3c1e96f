package nearest

import (
	"io"
	"time"

	"github.com/kristinawk/bicimad-nearest/pkg/datastructure"
	"github.com/kristinawk/bicimad-nearest/pkg/geo"

	"github.com/schollz/progressbar/v3"
)

type measureOptions struct {
	progress io.Writer
}

type MeasureOption func(*measureOptions)

// WithProgress renders a progress bar on w while pairs are measured.
func WithProgress(w io.Writer) MeasureOption {
	return func(o *measureOptions) {
		o.progress = w
	}
}

// Measure returns a copy of pairs with Distance set to metric(place, station).
func Measure(pairs []datastructure.Pair, places []datastructure.FlatPlace, stations []datastructure.Station,
	metric geo.DistanceFunc, opts ...MeasureOption) []datastructure.Pair {
	var o measureOptions
	for _, opt := range opts {
		opt(&o)
	}

	var bar *progressbar.ProgressBar
	if o.progress != nil {
		bar = progressbar.NewOptions(len(pairs),
			progressbar.OptionSetWriter(o.progress),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(15),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionShowCount(),
			progressbar.OptionSetDescription("[cyan]Measuring place-station distances..."),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	measured := make([]datastructure.Pair, len(pairs))
	for i, pair := range pairs {
		place := places[pair.PlaceIndex]
		station := stations[pair.StationIndex]
		pair.Distance = metric(place.Latitude, place.Longitude, station.Latitude, station.Longitude)
		measured[i] = pair

		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	return measured
}
