/*
Package output renders operation results and errors onto the d42 output
stream (stdout) in the format chosen by the user. The diagnostic stream
(stderr) is never written to by this package.

The following formats can be selected:

  - "json": machine-readable JSON, courtesy of [klo].
  - "yaml": YAML.
  - "pprint": human-readable Go-syntax pretty print; the default format.
  - "table": tabular listing for search results and key/value tables
    otherwise.
  - "raw": unformatted; strings are printed as-is.
  - "devnull": prints nothing at all.

Additionally, the internal "secret" format shows a single-line secret on the
terminal for a few seconds and then clears the screen. It can only be used by
operations, not selected by users.

Rendering never falls back to another format: when a specific format was
requested but cannot be produced, this is an error.

[klo]: https://github.com/thediveo/klo
*/
package output
