// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources; for every field the first
// source that sets a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables
//  3. Config file (JSON or YAML, chosen by extension)
//  4. Built-in defaults
//
// The resulting [StructuredConfig] is built once at process start by
// [GetStructuredConfig] and passed explicitly to every component.
package config
