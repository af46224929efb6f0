package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var responseCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "listen_mock",
	Name:      "responses_total",
	Help:      "The total number of served transcription results",
}, []string{"path"})

func countResponse(path string) {
	responseCounter.WithLabelValues(path).Inc()
}
