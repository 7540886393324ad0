package figure

// Options carries the parameters for the figure rendering stage. The
// resolver forwards them untouched; only the diagram stage and the
// conversion backend interpret them.
type Options struct {
	Width   float64
	Height  float64
	Crop    bool
	Device  string
	Caption bool
}

const (
	DefaultWidth  = 10
	DefaultHeight = 7
	DefaultDevice = "pdf"
)

func DefaultOptions() Options {
	return Options{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Crop:    true,
		Device:  DefaultDevice,
		Caption: false,
	}
}

// Scale returns the raster scaling factor for renderers that produce
// pixel output, relative to the default figure width.
func (opts Options) Scale() float64 {
	if opts.Width <= 0 {
		return 1.0
	}
	return opts.Width / DefaultWidth
}
