// Package compat integrates with a third-party customization extension.
//
// When that extension is loaded it owns hat rendering, so custom items are appended to its own
// category registry instead of the host catalog. The registry value is read, converted to an
// ordered map, extended and written back as a new value; the value that was read is never
// modified. A process-wide flag limits the effect to one successful load.
package compat
