//go:build !windows

package colorfy

func enableVirtualTerminal() error {
	return nil
}
