//go:build !windows

package ansi

// EnableANSI is a no-op outside Windows, where ANSI processing is always on.
func EnableANSI() error {
	return nil
}
