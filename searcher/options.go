package searcher

import "time"

type Option func(o *options)

type options struct {
	goroutines int
	episodes   int
	duration   time.Duration
	metrics    Collector
}

func defaultOptions() options {
	return options{
		goroutines: 1,
		metrics:    NewDummyCollector(),
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, option := range opts {
		option(&o)
	}
	return o
}

// WithMetrics makes the strategy report every decision to collector.
func WithMetrics(collector Collector) Option {
	return func(o *options) {
		if collector != nil {
			o.metrics = collector
		}
	}
}

// WithGoroutines sets the number of MCTS workers sharing one tree.
func WithGoroutines(goroutines int) Option {
	return func(o *options) {
		if goroutines > 0 {
			o.goroutines = goroutines
		}
	}
}

// WithEpisodes bounds MCTS by a number of simulations.
func WithEpisodes(episodes int) Option {
	return func(o *options) {
		if episodes > 0 {
			o.episodes = episodes
		}
	}
}

// WithDuration bounds MCTS by wall-clock time. Episodes take precedence.
func WithDuration(duration time.Duration) Option {
	return func(o *options) {
		if duration > 0 {
			o.duration = duration
		}
	}
}
