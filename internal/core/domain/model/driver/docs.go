// Package driver provides the Driver aggregate for fleet availability
// management in the dispatch system.
//
// A driver cycles between available, busy, and offline. Assignment and release
// are driven by the order lifecycle: assigning an order makes the driver busy,
// delivering it makes the driver available again. The aggregate enforces that
// a driver holds at most one unfinished order and that a busy driver cannot
// go offline.
package driver
