// Package imaging provides the image plumbing around the template matcher:
// loading and caching, grayscale conversion, template extraction,
// foreground-mask simplification, and match annotation.
//
// The match core (internal/match) only understands single-channel float
// planes; everything in this package exists to produce those planes from
// image files or to render the core's results back onto images.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0, 0) at the top-left corner,
// X increasing rightward and Y increasing downward. Regions use an
// inclusive top-left and exclusive bottom-right corner.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The remaining functions are
// stateless and can run concurrently on different images.
//
// # Output Encoding
//
// Functions that produce images (ExtractTemplate, Simplify, Annotate)
// return them base64-encoded as PNG inside a result struct, ready to be
// embedded in a JSON response.
package imaging
