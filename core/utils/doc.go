// Package utils provides common helper functions shared across the
// application, currently the address parsing/formatting used by
// configuration and the scan dump.
package utils
