// Package cache wraps a market data provider with a DuckDB-backed store
// so repeated analyses of the same symbol and period do not hit the
// upstream API.
package cache

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/marcboeker/go-duckdb"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-analysis/internal/logger"
	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata/provider"
)

// DefaultTTL keeps daily bars for one hour before refetching.
const DefaultTTL = time.Hour

// CachedProvider is a provider.Provider decorator. Bars are stored per
// (symbol, period) and refetched once older than the TTL; profiles pass
// through uncached.
type CachedProvider struct {
	db       *sql.DB
	upstream provider.Provider
	logger   *logger.Logger
	sq       squirrel.StatementBuilderType
	ttl      time.Duration
}

// New opens or creates the cache database at path.
func New(path string, upstream provider.Provider, ttl time.Duration, log *logger.Logger) (*CachedProvider, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCacheFailed, "open cache database", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS bars (
			id TEXT PRIMARY KEY,
			symbol TEXT,
			period TEXT,
			time TIMESTAMP,
			open DOUBLE,
			high DOUBLE,
			low DOUBLE,
			close DOUBLE,
			volume DOUBLE,
			fetched_at TIMESTAMP
		)
	`)
	if err != nil {
		db.Close()

		return nil, errors.Wrap(errors.ErrCodeCacheFailed, "create bars table", err)
	}

	return &CachedProvider{
		db:       db,
		upstream: upstream,
		logger:   log,
		sq:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		ttl:      ttl,
	}, nil
}

func (c *CachedProvider) Name() string {
	return c.upstream.Name()
}

// GetBars serves fresh cached bars when available and falls back to the
// upstream provider otherwise. Upstream results replace the cached rows.
func (c *CachedProvider) GetBars(ctx context.Context, symbol string, period marketdata.Period) ([]types.Bar, error) {
	fresh, err := c.isFresh(symbol, period)
	if err != nil {
		return nil, err
	}

	if fresh {
		c.logger.Debug("serving bars from cache",
			zap.String("symbol", symbol),
			zap.String("period", string(period)))

		return c.readBars(symbol, period)
	}

	bars, err := c.upstream.GetBars(ctx, symbol, period)
	if err != nil {
		return nil, err
	}

	if err := c.storeBars(symbol, period, bars); err != nil {
		// A failed write must not fail the analysis.
		c.logger.Warn("failed to cache bars",
			zap.String("symbol", symbol),
			zap.Error(err))
	}

	return bars, nil
}

// GetProfile passes through to the upstream provider.
func (c *CachedProvider) GetProfile(ctx context.Context, symbol string) (*types.StockProfile, error) {
	return c.upstream.GetProfile(ctx, symbol)
}

// Close closes the cache database.
func (c *CachedProvider) Close() error {
	return c.db.Close()
}

func (c *CachedProvider) isFresh(symbol string, period marketdata.Period) (bool, error) {
	var fetchedAt sql.NullTime

	err := c.sq.Select("MAX(fetched_at)").
		From("bars").
		Where(squirrel.Eq{"symbol": symbol, "period": string(period)}).
		RunWith(c.db).
		QueryRow().
		Scan(&fetchedAt)
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeQueryFailed, "query cache freshness", err)
	}

	return fetchedAt.Valid && time.Since(fetchedAt.Time) < c.ttl, nil
}

func (c *CachedProvider) readBars(symbol string, period marketdata.Period) ([]types.Bar, error) {
	rows, err := c.sq.Select("time", "open", "high", "low", "close", "volume").
		From("bars").
		Where(squirrel.Eq{"symbol": symbol, "period": string(period)}).
		OrderBy("time ASC").
		RunWith(c.db).
		Query()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "query cached bars", err)
	}
	defer rows.Close()

	var bars []types.Bar

	for rows.Next() {
		var bar types.Bar
		if err := rows.Scan(&bar.Time, &bar.Open, &bar.High, &bar.Low, &bar.Close, &bar.Volume); err != nil {
			return nil, errors.Wrap(errors.ErrCodeQueryFailed, "scan cached bar", err)
		}

		bars = append(bars, bar)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "iterate cached bars", err)
	}

	return bars, nil
}

func (c *CachedProvider) storeBars(symbol string, period marketdata.Period, bars []types.Bar) error {
	tx, err := c.db.Begin()
	if err != nil {
		return errors.Wrap(errors.ErrCodeCacheFailed, "begin cache transaction", err)
	}

	_, err = c.sq.Delete("bars").
		Where(squirrel.Eq{"symbol": symbol, "period": string(period)}).
		RunWith(tx).
		Exec()
	if err != nil {
		tx.Rollback()

		return errors.Wrap(errors.ErrCodeCacheFailed, "evict stale bars", err)
	}

	fetchedAt := time.Now()

	for _, bar := range bars {
		_, err = c.sq.Insert("bars").
			Columns("id", "symbol", "period", "time", "open", "high", "low", "close", "volume", "fetched_at").
			Values(uuid.New().String(), symbol, string(period), bar.Time, bar.Open, bar.High, bar.Low, bar.Close, bar.Volume, fetchedAt).
			RunWith(tx).
			Exec()
		if err != nil {
			tx.Rollback()

			return errors.Wrap(errors.ErrCodeCacheFailed, "insert bar", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(errors.ErrCodeCacheFailed, "commit cache transaction", err)
	}

	return nil
}
