package console

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	commandsMetricName = "org_registry_commands_total"

	resultSuccess = "success"
	resultError   = "error"
	resultUsage   = "usage"
	resultUnknown = "unknown"

	// command label shared by all unrecognized input
	unrecognizedCommand = "unrecognized"
)

var commandsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: commandsMetricName,
		Help: "Commands dispatched by the console, by command and result.",
	},
	[]string{"command", "result"},
)

func init() {
	prometheus.MustRegister(commandsTotal)
}

func recordCommand(command, result string) {
	commandsTotal.WithLabelValues(command, result).Inc()
}

// CommandSummary reads the command counters from gatherer, keyed by "command/result"
func CommandSummary(gatherer prometheus.Gatherer) (map[string]float64, error) {
	families, err := gatherer.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}
	summary := map[string]float64{}
	for _, family := range families {
		if family.GetName() != commandsMetricName {
			continue
		}
		for _, metric := range family.GetMetric() {
			var command, result string
			for _, label := range metric.GetLabel() {
				switch label.GetName() {
				case "command":
					command = label.GetValue()
				case "result":
					result = label.GetValue()
				}
			}
			summary[command+"/"+result] = metric.GetCounter().GetValue()
		}
	}
	return summary, nil
}
