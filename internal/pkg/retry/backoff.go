package retry

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// Capped returns the delay before retry number attempt (zero based): base doubled per attempt,
// up to 20% jitter on top, bounded by limit. It is stateless so the delay can be computed from an
// attempt counter persisted between runs.
func Capped(attempt int, base, limit time.Duration) time.Duration {
	d := exponential(attempt, base)
	if limit > 0 && d > limit {
		return limit
	}
	return d
}

func exponential(attempt int, base time.Duration) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	if attempt > 16 {
		attempt = 16
	}
	wait := time.Duration(1<<attempt) * base
	return wait + time.Duration(jitter(int64(wait/5)))
}

func jitter(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// #nosec G115 -- high bit masked off
	return int64(binary.BigEndian.Uint64(buf[:])&0x7FFFFFFFFFFFFFFF) % n
}
