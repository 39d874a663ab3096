// Package utils provides small helpers shared by the exporters and the narrator
// that don't fit into domain-specific packages: translating .NET style date
// format strings into Go layouts and cleaning strings for XML output.
package utils
