// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package confirm implements the interactive prompt guarding destructive
// replacement of original files.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReplaceOriginals asks the user to confirm deleting source files after
// conversion. Only "y" or "Y" proceeds; anything else, including EOF,
// cancels. The caller must not touch any file when this returns false.
func ReplaceOriginals(in io.Reader, out io.Writer) (bool, error) {
	fmt.Fprintln(out, "Warning: This will replace the original markdown files.")
	fmt.Fprintln(out, "Are you sure you want to continue? (y/N)")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}
