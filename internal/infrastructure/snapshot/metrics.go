package snapshot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var browserUp = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "namevalue",
	Name:      "card_browser_up",
	Help:      "1 while the headless browser for card export is running.",
})
