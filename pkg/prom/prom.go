package prom

import (
	"sync"
	"time"

	"github.com/nimasrn/clubhouse/pkg/logger"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	SystemStore = "store"
)
const (
	MetricStoreOperations        = "operations_total"
	MetricStoreOperationDuration = "operation_duration_seconds"
	MetricMembersByStatus        = "members"
)

var lockCreateMetricLock = &sync.Mutex{}
var namespace = "none"

var MetricSystemEnabled = false

var registry = prometheus.NewRegistry()

var MetricCollectionCounterVec = make(map[string]*prometheus.CounterVec)
var MetricCollectionGaugeVec = make(map[string]*prometheus.GaugeVec)
var MetricCollectionHistogramVec = make(map[string]*prometheus.HistogramVec)

var defaultLabels prometheus.Labels

// Create builds a fresh registry with the store metrics. Calling it again
// discards previously collected values.
func Create(env string, nameSpace string) error {
	lockCreateMetricLock.Lock()
	registry = prometheus.NewRegistry()
	MetricCollectionCounterVec = make(map[string]*prometheus.CounterVec)
	MetricCollectionGaugeVec = make(map[string]*prometheus.GaugeVec)
	MetricCollectionHistogramVec = make(map[string]*prometheus.HistogramVec)
	lockCreateMetricLock.Unlock()

	defaultLabels = make(prometheus.Labels)
	defaultLabels["env"] = env
	namespace = nameSpace
	MetricSystemEnabled = true

	var err error
	hasError := func(e error) {
		if err == nil && e != nil {
			err = e
		}
	}

	// Store
	hasError(createCounterVec(SystemStore, MetricStoreOperations, []string{"entity", "operation", "outcome"}))
	hasError(createHistogramVec(SystemStore, MetricStoreOperationDuration, []string{"entity", "operation"}))
	hasError(createGaugeVec(SystemStore, MetricMembersByStatus, []string{"status"}))

	return err
}

// Gatherer exposes the registry the metrics are collected in.
func Gatherer() prometheus.Gatherer {
	return registry
}

// WriteTextfile dumps the current metrics in the text exposition format,
// ready for the node exporter textfile collector.
func WriteTextfile(path string) error {
	if !MetricSystemEnabled {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, Gatherer()); err != nil {
		return errors.Wrapf(err, "failed to write metrics to %s", path)
	}
	logger.Debug("[metrics] textfile written", "path", path)
	return nil
}

func createCounterVec(subsystem, name string, labels []string) error {
	lockCreateMetricLock.Lock()
	defer lockCreateMetricLock.Unlock()
	MetricCollectionCounterVec[subsystem+name] = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        name,
		ConstLabels: defaultLabels,
	}, labels)
	return registry.Register(MetricCollectionCounterVec[subsystem+name])
}

func createHistogramVec(subsystem, name string, labels []string) error {
	lockCreateMetricLock.Lock()
	defer lockCreateMetricLock.Unlock()
	MetricCollectionHistogramVec[subsystem+name] = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        name,
		ConstLabels: defaultLabels,
		Buckets:     prometheus.DefBuckets,
	}, labels)
	return registry.Register(MetricCollectionHistogramVec[subsystem+name])
}

func createGaugeVec(subsystem, name string, labels []string) error {
	lockCreateMetricLock.Lock()
	defer lockCreateMetricLock.Unlock()

	MetricCollectionGaugeVec[subsystem+name] = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        name,
		ConstLabels: defaultLabels,
	}, labels)
	return registry.Register(MetricCollectionGaugeVec[subsystem+name])
}

func SetGaugeVec(subsystem, name string, num float64, labelValues ...string) {
	if !MetricSystemEnabled {
		return
	}
	if v, ok := MetricCollectionGaugeVec[subsystem+name]; ok {
		v.WithLabelValues(labelValues...).Set(num)
		return
	}
	logger.Warn("[metrics] gauge not found", "subsystem", subsystem, "name", name)
}

func AddCounterVec(subsystem, name string, num float64, labelValues ...string) {
	if !MetricSystemEnabled {
		return
	}
	if v, ok := MetricCollectionCounterVec[subsystem+name]; ok {
		v.WithLabelValues(labelValues...).Add(num)
		return
	}
	logger.Warn("[metrics] counter vec not found", "subsystem", subsystem, "name", name)
}

func IncCounterVec(subsystem, name string, labelValues ...string) {
	AddCounterVec(subsystem, name, 1, labelValues...)
}

func AddHistogramVec(subsystem, name string, number float64, labelValues ...string) {
	if !MetricSystemEnabled {
		return
	}
	if v, ok := MetricCollectionHistogramVec[subsystem+name]; ok {
		v.WithLabelValues(labelValues...).Observe(number)
		return
	}
	logger.Warn("[metrics] histogram vec not found", "subsystem", subsystem, "name", name)
}

// ObserveStoreOperation counts one store call and records how long it took.
func ObserveStoreOperation(entity, operation, outcome string, start time.Time) {
	IncCounterVec(SystemStore, MetricStoreOperations, entity, operation, outcome)
	AddHistogramVec(SystemStore, MetricStoreOperationDuration, time.Since(start).Seconds(), entity, operation)
}

// SetMembersByStatus publishes the size of each payment status bucket.
func SetMembersByStatus(status string, count int64) {
	SetGaugeVec(SystemStore, MetricMembersByStatus, float64(count), status)
}
