// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// Store ports are implemented by persistence adapters and called by the application layer.
// Client ports are implemented by outbound adapters and called by the taskctl commands.
package ports
