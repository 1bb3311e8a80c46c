/*
Package observability turns engine trace events into Prometheus metrics.

Metrics.Hooks returns domain.RuleHooks that can be passed to samuel.WithHooks;
the HTTP adapter exposes the registry on /metrics.
*/
package observability
