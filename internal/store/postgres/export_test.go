package postgres

import "time"

// SetNowForTest overrides the store's clock so tests can control TTL expiry.
func (s *StatsStore) SetNowForTest(now func() time.Time) {
	s.now = now
}
