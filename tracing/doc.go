// Package tracing wraps OpenTelemetry so the flow lifecycle and the event
// dispatcher can record one span per emission and per handler invocation.
// Until Init or InitWithExporter is called the global no-op provider is used
// and spans cost nothing.
package tracing
