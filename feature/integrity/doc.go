// Package integrity provides health checks for the custom hats deployment.
//
// Unlike the 'hats' package which performs the merge, this package validates the inputs the
// merge depends on, so configuration problems show up before the retry loop starts failing.
//
// # Checks Provided
//
//   - Structure: Checks that the bundle folder exists in the storage bucket (fixable).
//   - Bundle: Resolves the bundle and lists items and unpaired assets.
//   - Schema: Validates that the host database has the options table and its columns.
//   - Anchor: Verifies that the anchor index fits the live catalog options.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/bundle : Runs bundle check.
//   - GET /integrity/schema : Runs schema check.
//   - GET /integrity/anchor : Runs anchor check.
package integrity
