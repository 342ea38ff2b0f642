// Package config provides configuration management for the custom hats service.
//
// It utilizes Viper for loading configuration from environment variables and an optional .env
// file. Every key has a default declared in a `default` struct tag next to its `mapstructure`
// tag, so the whole configuration surface is visible in the section structs.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP port and API key
//   - Storage: S3/MinIO credentials and the bundle bucket
//   - Log: logging level and format
//   - Database: optional host database holding the catalog options
//   - Catalog: bundle location and file extensions
//   - Retry: success and failure intervals of the integration loop
//   - Hats: anchor index, extension ids, shader and slot names
//
// Environment variables use the SECTION_KEY form, e.g. HATS_ANCHOR=23 or
// RETRY_FAILURE_INTERVAL=30s. Lists are comma separated: CATALOG_MODEL_EXTS=.glb,.fbx
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Hats.Anchor)
package config
