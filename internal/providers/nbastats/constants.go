package nbastats

import "time"

const (
	providerName       = "nbastats"
	defaultBaseURL     = "https://api.nbastats.io/v1"
	defaultHTTPTimeout = 10 * time.Second
	defaultSearchLimit = 25
)
