// Package utils provides common utility functions for the otc-compare application.
// It includes helper functions for type conversion and rounding that are shared by
// the feed mapping step and the reconciliation arithmetic.
package utils
