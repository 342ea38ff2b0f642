// Package storage provides access to the object storage that holds asset bundles.
//
// It wraps the MinIO Go client behind a small Client interface so the catalog loader and the
// integrity checks can be tested with the mocks in core/storage/mocks. Both AWS S3 and
// self-hosted MinIO are supported.
//
// # Operations
//
//   - BucketExists: Verifies access to the bundle bucket.
//   - ListObjects: Lists the assets of a bundle (prefix listing, optionally with user metadata).
//   - PutObject: Publishes a local bundle to the bucket.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
