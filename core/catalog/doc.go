// Package catalog builds the list of custom items from an asset bundle.
//
// A bundle is a flat set of files stored either under an object storage prefix or in a local
// directory. Files are classified by extension into models and icons, and every base name that
// has exactly one model and one icon becomes an Item. Anything else is reported as an orphan and
// left out of the catalog.
//
// The Loader resolves the catalog once per process. Callers that race on startup share a single
// listing through singleflight, and Current returns nil until the first load succeeds, which the
// merge protocol treats as "not ready yet".
//
// Publish is the reverse direction, used by the CLI to upload a local bundle to storage.
package catalog
