package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
)

var predictionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "sentiment_predictions_total",
		Help: "Predictions served, by predicted sentiment.",
	},
	[]string{"sentiment"},
)

func init() {
	prometheus.MustRegister(predictionsTotal)
}
