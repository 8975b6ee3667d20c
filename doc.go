/*
Package d42 talks to the REST API of a Device42 CMDB (configuration management
database). It provides a small API client that performs a single HTTP round
trip per call and normalizes every outcome into a [Result] envelope: a
successful call carries the decoded JSON response and the HTTP status code,
while failures (missing query, missing credentials, TLS trouble, unreachable
server, non-success HTTP status) carry a human-readable message or an error
detail object instead. Callers thus never have to deal with transport errors
themselves.

The client deliberately does neither retry nor cache: the d42 command line
tool issues at most a couple of sequential calls per run and then exits.

Request parameters are passed as [Params], a simple key/value mapping that is
either sent as a JSON request body (POST, DELETE) or URL-encoded into a query
string (searches).
*/
package d42
