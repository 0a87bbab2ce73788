package ui

import "golang.org/x/term"

// IsTTY reports whether the given file descriptor refers to a terminal.
func IsTTY(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// Width returns the terminal width in columns, or fallback if fd is not a
// terminal or its size cannot be determined.
func Width(fd uintptr, fallback int) int {
	w, _, err := term.GetSize(int(fd))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
