// Package vmem provides a virtual-memory implementation of the
// brkalloc.Region interface backed by an anonymous private mapping.
// It is only available on linux and darwin.
package vmem
