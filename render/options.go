package render

// DefaultImageSize is the length of the longer SVG side in pixels.
const DefaultImageSize = 1000

type options struct {
	imageSize   int
	strokeWidth float64
	conflicts   []int
	summary     bool
}

// Option configures WriteSVG.
type Option func(*options)

// WithImageSize sets the length of the longer image side. Non-positive
// values keep the default.
func WithImageSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.imageSize = n
		}
	}
}

// WithStrokeWidth sets the circle outline width.
func WithStrokeWidth(w float64) Option {
	return func(o *options) {
		if w > 0 {
			o.strokeWidth = w
		}
	}
}

// WithConflicts draws the given candidate indices in red.
func WithConflicts(idx []int) Option {
	return func(o *options) {
		o.conflicts = idx
	}
}

// WithSummary adds a "|S|=n" label in the top left corner.
func WithSummary() Option {
	return func(o *options) {
		o.summary = true
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		imageSize:   DefaultImageSize,
		strokeWidth: 2,
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}
