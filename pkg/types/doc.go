// Package types defines the record set, schema, session, and configuration
// types shared by the opsboard storage and reporting packages, along with the
// standard error values.
package types
