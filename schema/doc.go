// Package schema holds the schema-level value types shared across the
// statistics view: feature paths and physical feature types.
package schema
