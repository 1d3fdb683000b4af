package store

import (
	"context"
	"math/rand"
	"strings"
	"time"
)

// backoff bounds how often and how long a contended write is retried.
type backoff struct {
	attempts int // retries after the first try
	base     time.Duration
	ceiling  time.Duration
}

var writeBackoff = backoff{attempts: 3, base: 50 * time.Millisecond, ceiling: 500 * time.Millisecond}

// Messages modernc.org/sqlite uses for lock contention: SQLITE_BUSY (5),
// SQLITE_LOCKED (6) and the WAL short read (522). busy_timeout absorbs
// most of these before they reach us.
var contentionMarkers = []string{
	"SQLITE_BUSY", "SQLITE_LOCKED", "IOERR_SHORT_READ",
	"database is locked", "database table is locked",
	"(5)", "(6)", "(522)",
}

func isContention(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, m := range contentionMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

// retryOp runs fn until it succeeds, fails for a reason other than lock
// contention, or b.attempts retries are spent. Waiting stops early when
// ctx is done; the last error from fn is returned either way.
func retryOp(ctx context.Context, b backoff, fn func() error) error {
	err := fn()
	for try := 0; try < b.attempts && isContention(err); try++ {
		t := time.NewTimer(b.delay(try))
		select {
		case <-ctx.Done():
			t.Stop()
			return err
		case <-t.C:
		}
		err = fn()
	}
	return err
}

// delay doubles from base on each try, capped at ceiling, plus up to base
// of jitter.
func (b backoff) delay(try int) time.Duration {
	d := b.ceiling
	if try < 31 {
		if x := b.base << uint(try); x > 0 && x < d {
			d = x
		}
	}
	return d + time.Duration(rand.Int63n(int64(b.base)))
}
