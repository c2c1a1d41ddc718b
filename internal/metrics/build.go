package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var buildInfo = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "ytnext_build_info",
	Help: "Build information; value is always 1",
}, []string{"version", "commit", "mode"})

// SetBuildInfo publishes the running build. mode is mock or youtube.
func SetBuildInfo(version, commit, mode string) {
	buildInfo.Reset()
	buildInfo.WithLabelValues(version, commit, mode).Set(1)
}
