// Package filesystem provides the filesystem seam used by provisioning.
//
// FS covers the handful of operations the tool performs: reading the
// template, replacing the materialized config in one step, and changing its
// mode. NewOS is the real implementation; tests substitute
// testutil.MemoryFS to inject failures.
package filesystem
