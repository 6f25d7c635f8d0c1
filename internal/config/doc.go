// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources. For every field the
// first source that provides a non-zero value wins:
//  1. Environment variables (a local .env file is loaded into the
//     environment first, without overriding variables that are already set)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig]. The returned config is a
// plain value: components receive the sub-config they need at construction
// time and never read configuration globally.
package config
