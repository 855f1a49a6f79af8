// Package config loads, validates, writes and watches the pagebar
// configuration file.
//
// A configuration is a YAML document:
//
//	apiVersion: pagebar.macropower.dev/v1
//	kind: Configuration
//	ui:
//	  theme: auto
//	  pageSizes: [10, 20, 50, 100]
//
// Documents are checked against a JSON schema reflected from [Config] before
// they are decoded, so errors point at the offending lines.
package config
