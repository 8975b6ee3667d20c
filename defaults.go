// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package d42

const (
	// DefaultAPIURL is the base URL of the Device42 REST API used when neither
	// configuration nor CLI flags specify one.
	DefaultAPIURL = "https://localhost/api/"
	// DefaultAPIVersion is the API version path segment inserted between the
	// base URL and the resource path.
	DefaultAPIVersion = "1.0"
)

// SemVersion is the semantic version of the d42 client package and CLI.
const SemVersion = "0.977"
