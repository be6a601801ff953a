// Package config provides configuration loading, merging, and validation
// facilities for the FitiPlus client binaries.
//
// Configuration is assembled from multiple sources. The first source that
// sets a field wins:
//  1. Command-line flags
//  2. Environment variables (a .env file is loaded into the environment
//     first, without overriding variables that are already set)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig].
package config
