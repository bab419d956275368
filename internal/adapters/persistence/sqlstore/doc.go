// Package sqlstore implements ports.TaskStore on gorm with the pure-Go
// SQLite driver. Due dates are stored as ISO "yyyy-MM-dd" text so that
// string comparison and ordering match calendar order.
package sqlstore
