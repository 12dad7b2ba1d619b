package regime

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/meridian-quant/regimegate/internal/datasource"
	"github.com/meridian-quant/regimegate/internal/indicator"
	"github.com/meridian-quant/regimegate/internal/logger"
	"github.com/meridian-quant/regimegate/internal/types"
)

// Moving-average periods for the cache's cheap proxy check. Intentionally
// cheaper than the full multi-method detector: the cache answers one
// question per calendar day for the whole process, so a 20/50 SMA cross on
// the reference instrument is enough.
const (
	proxyFastPeriod = 20
	proxySlowPeriod = 50
)

// minReferenceRows is the history below which the cache defaults to
// permissive rather than guessing.
const minReferenceRows = 50

// dayKeyLayout normalizes timestamps to calendar-day cache keys.
const dayKeyLayout = "2006-01-02"

// Stats is a snapshot of the cache state.
type Stats struct {
	Enabled       bool `json:"enabled"`
	CacheSize     int  `json:"cache_size"`
	ReferenceRows int  `json:"reference_row_count"`
}

// Cache computes the trade/no-trade decision once per calendar day over a
// reference instrument and serves it consistently to every consumer.
//
// It is an explicit context object: construct one per process and inject it
// into every consumer instead of reaching for package-level state. The
// cache fails open: if the reference data cannot be loaded, or a
// computation blows up, trading is permitted rather than blocked. This is
// deliberately the opposite of Filter's fail-closed policy; see DESIGN.md.
type Cache struct {
	mu sync.Mutex

	id      string
	loader  datasource.Loader
	filter  *Filter
	logger  *logger.Logger
	metrics *cacheMetrics
	proxy   func(types.PriceSeries) bool

	initialized bool
	enabled     bool
	reference   types.PriceSeries
	decisions   map[string]bool
}

// CacheOption customizes a Cache.
type CacheOption func(*Cache)

// WithMetrics registers cache hit/miss counters on the given registerer.
func WithMetrics(reg prometheus.Registerer) CacheOption {
	return func(c *Cache) {
		c.metrics = newCacheMetrics(reg)
	}
}

// NewCache creates a Cache. Initialization is lazy: the reference series is
// loaded on the first call to Initialize or ShouldTradeOn.
func NewCache(loader datasource.Loader, filter *Filter, log *logger.Logger, opts ...CacheOption) *Cache {
	if log == nil {
		log = logger.NewNopLogger()
	}

	c := &Cache{
		id:        uuid.NewString(),
		loader:    loader,
		filter:    filter,
		logger:    log,
		proxy:     trendProxy,
		decisions: make(map[string]bool),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Initialize loads the reference series and arms the cache. A load failure
// disables the cache permanently for this instance; every subsequent
// decision then defaults to permissive. Calling Initialize again after the
// first call is a no-op.
func (c *Cache) Initialize() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initializeLocked()
}

func (c *Cache) initializeLocked() {
	if c.initialized {
		return
	}

	c.initialized = true

	series, err := c.loader.LoadReferenceSeries()
	if err != nil {
		c.enabled = false
		c.logger.Warn("regime cache disabled: reference data unavailable",
			zap.String("cache_id", c.id),
			zap.Error(err))

		return
	}

	c.reference = series
	c.enabled = true

	c.logger.Info("regime cache initialized",
		zap.String("cache_id", c.id),
		zap.String("symbol", series.Symbol),
		zap.Int("rows", series.Len()))
}

// Filter returns the canonical regime filter held by the cache.
func (c *Cache) Filter() *Filter {
	return c.filter
}

// CurrentRegime classifies the reference series as of its latest bar.
// Returns Unknown when the cache is disabled.
func (c *Cache) CurrentRegime() types.RegimeLabel {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initializeLocked()

	if !c.enabled {
		return types.RegimeUnknown
	}

	return c.filter.Detector().CurrentRegime(c.reference)
}

// RegimeStrength returns the detector confidence over the reference series,
// or 0.0 when the cache is disabled.
func (c *Cache) RegimeStrength() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initializeLocked()

	if !c.enabled {
		return 0.0
	}

	return c.filter.Detector().Strength(c.reference)
}

// ShouldTradeOn reports whether trading is permitted on the given date.
//
// The decision is computed at most once per calendar day; repeat calls for
// the same day return the cached boolean. The mutex makes at-most-once a
// hard guarantee under concurrent callers. A disabled cache, insufficient
// history (< 50 rows up to the date) and any recovered computation failure
// all resolve to true (fail open).
func (c *Cache) ShouldTradeOn(date time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initializeLocked()

	if !c.enabled {
		return true
	}

	key := date.UTC().Format(dayKeyLayout)

	if decision, ok := c.decisions[key]; ok {
		c.metrics.hit()

		return decision
	}

	c.metrics.miss()

	decision := c.computeDecision(date)
	c.decisions[key] = decision

	c.logger.Debug("regime cache decision computed",
		zap.String("cache_id", c.id),
		zap.String("date", key),
		zap.Bool("allowed", decision))

	return decision
}

// computeDecision runs the SMA20/SMA50 proxy check over the reference
// history up to the end of the given calendar day.
func (c *Cache) computeDecision(date time.Time) (allowed bool) {
	// Fail open on any unexpected computation failure.
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("regime cache recovered from panic, permitting trade",
				zap.String("cache_id", c.id),
				zap.Any("panic", r))

			allowed = true
		}
	}()

	endOfDay := date.UTC().Truncate(24 * time.Hour).Add(24*time.Hour - time.Nanosecond)
	sliced := c.reference.TruncateAt(endOfDay)

	if sliced.Len() < minReferenceRows {
		return true
	}

	return c.proxy(sliced)
}

// trendProxy is the default per-day decision: the fast SMA above the slow
// SMA on the reference closes.
func trendProxy(series types.PriceSeries) bool {
	closes := series.Closes()
	fast := indicator.SMA(closes, proxyFastPeriod)
	slow := indicator.SMA(closes, proxySlowPeriod)

	last := len(closes) - 1

	return fast[last] > slow[last]
}

// Stats returns a snapshot of the cache state.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initializeLocked()

	return Stats{
		Enabled:       c.enabled,
		CacheSize:     len(c.decisions),
		ReferenceRows: c.reference.Len(),
	}
}

// ClearCache drops all memoized decisions. Test isolation hook only.
func (c *Cache) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.decisions = make(map[string]bool)
}

// disable forces the cache into its fail-open state. Used by tests to
// exercise the disabled path without a failing loader.
func (c *Cache) disable() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.initialized = true
	c.enabled = false
}
