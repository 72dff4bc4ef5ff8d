package roboviz

// Option configures a Scene or Visualizer.
type Option func(*options)

type options struct {
	showTrajectory bool
	zeroAngle      *float64
	fps            int32
}

func defaultOptions() options {
	return options{fps: 60}
}

// WithTrajectory draws connecting segments between consecutive poses.
func WithTrajectory() Option {
	return func(o *options) {
		o.showTrajectory = true
	}
}

// WithZeroAngle captures the first displayed pose as a heading reference
// and shows later headings relative to it, offset by deg.
func WithZeroAngle(deg float64) Option {
	return func(o *options) {
		o.zeroAngle = &deg
	}
}

// WithFrameRate sets the target frame rate of the window's event pump.
// The default is 60.
func WithFrameRate(fps int) Option {
	return func(o *options) {
		if fps > 0 {
			o.fps = int32(fps)
		}
	}
}
