package metric

import (
	"net/http"
	"time"
)

type (
	Factory interface {
		HTTP() HTTP
		Storage() Storage
		Handler() http.Handler
	}

	HTTP interface {
		Request(method, path string, status int, duration time.Duration)
		SlowRequest(method, path string, status int, duration time.Duration)
	}

	Storage interface {
		ObserveQuery(operation string, duration time.Duration)
		IncrementFailures(operation string)
	}
)
