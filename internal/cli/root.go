// Package cli holds the kong command implementations.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/lifeup/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// confirm prompts for an explicit y/yes on stdin before a destructive action.
func confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N]: ", prompt)

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
