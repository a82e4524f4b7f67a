// Package protocol defines the wire format between the ospack CLI and
// the ospackd daemon.
//
// Messages are newline-delimited JSON envelopes. Each envelope carries a
// command name and an optional payload whose shape depends on the
// command. A connection carries one request-response exchange: the
// client writes one envelope, the daemon answers with an "ok" or
// "error" envelope and closes the connection.
package protocol
