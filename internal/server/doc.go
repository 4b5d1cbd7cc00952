// Package server exposes the analysis pipeline over HTTP.
//
// Endpoints:
//
//	GET  /         liveness message
//	POST /analyze  multipart upload of a capture document (form field
//	               "file", .json); responds with the analysis results and
//	               a base64-encoded heatmap PNG
//
// Malformed uploads are client errors with a descriptive "detail" field;
// only rendering or encoding failures surface as server errors. Each
// request runs an independent analysis with the server's configured
// parameters, so concurrent uploads do not share any mutable state.
package server
