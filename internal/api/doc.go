// Package api is the HTTP surface of the task board: request schemas, the
// validation and existence-gate middlewares, resource handlers, and the
// single conversion from service errors to status codes.
package api
