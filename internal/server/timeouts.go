package server

import "time"

const (
	readTimeout = 10 * time.Second
	// A fit simulation fans out to two upstream lookups plus retries, so the
	// write deadline is a bit looser than the read deadline.
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
