// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package d42

// ClientOptions defines how to reach and authenticate to the Device42 API.
type ClientOptions struct {
	// URL is the base URL of the API, such as "https://cmdb.example.org/api/".
	// A missing trailing slash gets added automatically.
	URL string
	// Version is the API version path segment; defaults to DefaultAPIVersion.
	Version string
	// User and Password are used for HTTP basic authentication. Both must be
	// present, as otherwise Call refuses to contact the API at all.
	User     string
	Password string
	// InsecureSkipVerify skips verification of the server's TLS certificate.
	// Danger zone: only ever set this on explicit user request.
	InsecureSkipVerify bool
}
