/*
Package config loads the Device42 API access configuration.

The configuration consists of the API URL, API version, user name and
password, as well as the preferred output format and whether to skip TLS
certificate verification. Values come from these sources, with later ones
overriding earlier ones:

  - built-in defaults,
  - a YAML configuration file, by default ~/.d42/config.yaml if it exists,
  - D42_API_URL, D42_API_USER, D42_API_PASS, D42_API_VERSION,
    D42_API_OUTPUT and D42_API_INSECURE environment variables.

Command line flags finally override the loaded configuration.
*/
package config
