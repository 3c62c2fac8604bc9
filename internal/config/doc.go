// Package config provides configuration loading, merging, and validation for
// the post gateway.
//
// Configuration is assembled from several sources. For every field the first
// source that sets a non-zero value wins, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry point is [GetStructuredConfig].
package config
