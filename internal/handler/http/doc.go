// Package http implements the HTTP transport layer of the gateway.
//
// It wires the chi router, the public /tokens and /users routes, the gated
// /posts and /account groups and the static /images mount. The token gate
// ([Handler.auth]) sits in front of the gated groups: it verifies the bearer
// token of every request and stores the resulting identity in the request
// context, so protected handlers never look at the Authorization header.
// Tracing, access logging, panic recovery and compression are handled here
// before requests reach the service layer.
package http
