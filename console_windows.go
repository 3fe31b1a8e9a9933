//go:build windows

package colorfy

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func enableVirtualTerminal() error {
	handle := windows.Stdout
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return fmt.Errorf("get console mode: %w", err)
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return nil
	}
	if err := windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
		return fmt.Errorf("set console mode: %w", err)
	}
	return nil
}
