package vptree

// defaultSequentialThreshold is the subproblem size below which the
// parallel builder finishes synchronously rather than forking another
// goroutine, avoiding scheduling overhead on small ranges.
const defaultSequentialThreshold = 512

type buildConfig struct {
	workers             int
	sequentialThreshold int
	logger              *Logger
	metrics             MetricsCollector
}

func newBuildConfig() *buildConfig {
	return &buildConfig{
		workers:             1,
		sequentialThreshold: defaultSequentialThreshold,
		logger:              NoopLogger(),
		metrics:             NoopMetricsCollector{},
	}
}

// BuildOption configures tree construction (New, NewParallel, NewIndex).
type BuildOption func(*buildConfig)

// WithWorkers sets the degree of parallelism for NewParallel. A value <= 0
// is treated as 1 (sequential), per §7's worker-count contract. It has no
// effect on New/NewIndex, which are always single-threaded.
func WithWorkers(workers int) BuildOption {
	return func(c *buildConfig) {
		if workers <= 0 {
			workers = 1
		}
		c.workers = workers
	}
}

// WithSequentialThreshold overrides the subproblem size below which the
// parallel builder stops forking new goroutines.
func WithSequentialThreshold(n int) BuildOption {
	return func(c *buildConfig) {
		if n < 1 {
			n = 1
		}
		c.sequentialThreshold = n
	}
}

// WithLogger attaches a Logger to the tree's construction and queries.
func WithLogger(l *Logger) BuildOption {
	return func(c *buildConfig) {
		if l == nil {
			l = NoopLogger()
		}
		c.logger = l
	}
}

// WithMetrics attaches a MetricsCollector to the tree's construction and
// queries.
func WithMetrics(m MetricsCollector) BuildOption {
	return func(c *buildConfig) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		c.metrics = m
	}
}

// queryConfig is the resolved form of a Query call: the unified descriptor
// from §4.5/§4.6, generalizing the three named query methods.
type queryConfig struct {
	maxItems    int
	maxDistance float64
	exclusive   bool
	sorted      bool
}

func newQueryConfig() *queryConfig {
	return &queryConfig{
		maxItems:    -1, // unset; resolved per query kind
		maxDistance: -1, // unset; resolved per query kind
	}
}

// QueryOption configures a generalized Query call.
type QueryOption func(*queryConfig)

// WithMaxItems caps the number of items returned to k, keeping the k
// nearest; k = 0 returns nothing. A negative k is treated as unset, so no
// item cap applies (KNearest, by contrast, returns nothing for k < 0).
func WithMaxItems(k int) QueryOption {
	return func(c *queryConfig) { c.maxItems = k }
}

// WithMaxDistance caps results to those within r of the target. A negative
// r is treated as unset, so no distance cap applies (InRadius, by contrast,
// returns nothing for r < 0). Combined with WithMaxItems this expresses
// "k nearest within radius r", which the three named query methods cannot.
func WithMaxDistance(r float64) QueryOption {
	return func(c *queryConfig) { c.maxDistance = r }
}

// WithExclusive excludes candidates at exactly zero distance from the
// target, useful when the target is itself one of the stored items and the
// caller wants the other items.
func WithExclusive() QueryOption {
	return func(c *queryConfig) { c.exclusive = true }
}

// WithSorted requests ascending-by-distance output. Sorting is a post-pass
// over the accumulator's final contents, not part of pruning.
func WithSorted() QueryOption {
	return func(c *queryConfig) { c.sorted = true }
}
