package main

import (
	"github.com/julimen5/cocos-challenge/internal/usecasees/structs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Order map[structs.MetricConst]prometheus.Counter
}

func (a *App) InitMetrics() {
	metrics := Metrics{Order: map[structs.MetricConst]prometheus.Counter{}}

	metrics.Order[structs.MetricOrderFilled] = promauto.NewCounter(prometheus.CounterOpts{
		Name: structs.MetricOrderFilled.ToString(),
		Help: structs.MetricOrderFilled.ToString(),
	})

	metrics.Order[structs.MetricOrderRejected] = promauto.NewCounter(prometheus.CounterOpts{
		Name: structs.MetricOrderRejected.ToString(),
		Help: structs.MetricOrderRejected.ToString(),
	})

	metrics.Order[structs.MetricOrderCancelled] = promauto.NewCounter(prometheus.CounterOpts{
		Name: structs.MetricOrderCancelled.ToString(),
		Help: structs.MetricOrderCancelled.ToString(),
	})

	a.Metrics = &metrics
}
