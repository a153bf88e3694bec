// Package opsboard exposes build-level metadata about the module.
package opsboard

// Version is the current release of the opsboard tool.
const Version = "0.4.0"
