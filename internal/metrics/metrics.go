package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"inspovault/internal/models"
	"inspovault/internal/store"
)

var (
	itemsDesc = prometheus.NewDesc(
		"inspovault_items",
		"Inspiration items in the vault by platform and usage status",
		[]string{"platform", "status"},
		nil,
	)
	collectionsDesc = prometheus.NewDesc(
		"inspovault_collections",
		"Collections in the vault by sharing state",
		[]string{"shared"},
		nil,
	)
	sharedItemsDesc = prometheus.NewDesc(
		"inspovault_shared_items",
		"Items shared with the team",
		nil,
		nil,
	)

	notificationsCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "inspovault_notifications_created_total",
		Help: "Notifications created by variant",
	}, []string{"variant"})

	notificationsRemoved = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "inspovault_notifications_removed_total",
		Help: "Notifications removed by reason",
	}, []string{"reason"})

	linkChecks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "inspovault_link_checks_total",
		Help: "Saved URL reachability checks by result",
	}, []string{"result"})
)

// VaultCollector is a custom Prometheus collector that reads counts from the
// store on each scrape.
type VaultCollector struct {
	store *store.Store
}

// NewVaultCollector creates a collector over the given store.
func NewVaultCollector(s *store.Store) *VaultCollector {
	return &VaultCollector{store: s}
}

// Describe sends the metric descriptors to the channel.
func (c *VaultCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- itemsDesc
	ch <- collectionsDesc
	ch <- sharedItemsDesc
}

// Collect emits the current store counts as gauges.
func (c *VaultCollector) Collect(ch chan<- prometheus.Metric) {
	used := make(map[models.Platform]int)
	unused := make(map[models.Platform]int)
	for _, item := range c.store.ListItems() {
		if item.Used {
			used[item.Platform]++
		} else {
			unused[item.Platform]++
		}
	}
	for _, p := range models.Platforms {
		ch <- prometheus.MustNewConstMetric(itemsDesc, prometheus.GaugeValue, float64(used[p]), string(p), "used")
		ch <- prometheus.MustNewConstMetric(itemsDesc, prometheus.GaugeValue, float64(unused[p]), string(p), "unused")
	}

	st := c.store.Stats()
	ch <- prometheus.MustNewConstMetric(collectionsDesc, prometheus.GaugeValue, float64(st.SharedCollections), "true")
	ch <- prometheus.MustNewConstMetric(collectionsDesc, prometheus.GaugeValue, float64(st.Collections-st.SharedCollections), "false")
	ch <- prometheus.MustNewConstMetric(sharedItemsDesc, prometheus.GaugeValue, float64(st.SharedItems))
}

var registerOnce sync.Once

// Init registers the vault collector and notification counters with the
// default registry. Must be called once at startup.
func Init(s *store.Store) {
	registerOnce.Do(func() {
		prometheus.MustRegister(NewVaultCollector(s), notificationsCreated, notificationsRemoved, linkChecks)
	})
}

// RecordNotification counts a created notification.
func RecordNotification(variant string) {
	notificationsCreated.WithLabelValues(variant).Inc()
}

// RecordNotificationRemoved counts a removed notification.
func RecordNotificationRemoved(reason string) {
	notificationsRemoved.WithLabelValues(reason).Inc()
}

// RecordLinkCheck counts a saved URL check.
func RecordLinkCheck(result string) {
	linkChecks.WithLabelValues(result).Inc()
}
