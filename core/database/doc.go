// Package database connects to the host application's database.
//
// When the host keeps its customization options in a relational table, the option store in
// core/host/store reads and rewrites that table through the *gorm.DB returned by Connect.
//
// # Drivers
//
//   - mysql: DSN built from host, port, user, password and name, with connection, read and
//     write timeouts.
//   - sqlite: Name is the database file path (":memory:" works for local experiments).
//
// # Inspection
//
// GetTableColumns lists a table's columns so the integrity checks can verify the host schema
// before the merge loop writes to it.
package database
