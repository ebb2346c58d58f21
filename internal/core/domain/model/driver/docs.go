// Package driver implements the Driver aggregate: availability, verification,
// engagement with at most one delivery, and the last known GPS location.
//
// The aggregate is the single mutation point for the driver's location; the
// RecordFix method enforces the per-driver monotonicity rule that makes
// out-of-order GPS fixes harmless regardless of arrival order.
package driver
