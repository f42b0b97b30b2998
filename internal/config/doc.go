// Package config provides configuration loading, merging, and validation
// facilities for the signup service and its command-line client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (a .env file is loaded first, without overriding
//     variables already present in the process environment)
//  2. Command-line flags
//  3. JSON config file
//
// Fields left empty by every source receive the documented defaults before
// validation. The main entry points are [GetStructuredConfig] for the server
// and [GetClientConfig] for the client.
package config
