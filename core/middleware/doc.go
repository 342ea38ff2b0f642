// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation through the X-API-Key header.
//   - rayid: Generates a RayID for every request, stores it in the context locals and echoes it
//     in the response header so logs and responses can be correlated.
package middleware
