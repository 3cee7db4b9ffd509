// Package metrics provides observability hooks for generation runs.
//
// # Design
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics never need nil checks:
//
//	gen := generator.New(cfg, reg, generator.WithRecorder(metrics.NewPrometheusRecorder(nil)))
//
// # Export
//
// A generation run is a short-lived batch job, so there is no scrape endpoint.
// PrometheusRecorder.WriteTextfile writes the registry in the text exposition
// format for node_exporter's textfile collector.
package metrics
