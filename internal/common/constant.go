package common

// RequestIDHeaderName is the gRPC metadata / HTTP header key carrying the
// request correlation id.
const RequestIDHeaderName = "x-request-id"

// FileIDPrefix prefixes every counter-allocated logical file id.
const FileIDPrefix = "file_"
