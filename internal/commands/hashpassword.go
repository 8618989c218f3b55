package commands

import (
	"bufio"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/crcweb/center-site/internal/app"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Create the admin credentials file",
	Long: `Creates an auth.secret file with an Argon2id password hash.

The file location is taken from the AUTH_FILE environment variable,
defaulting to auth.secret next to the binary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		overwrite, _ := cmd.Flags().GetBool("overwrite")
		unmask, _ := cmd.Flags().GetBool("insecure-unmask-password")

		fmt.Print("Enter username: ")
		var username string
		if _, err := fmt.Scanln(&username); err != nil {
			return fmt.Errorf("error reading username: %w", err)
		}
		if username == "" {
			return fmt.Errorf("username cannot be empty")
		}

		var password, confirm string
		if unmask {
			fmt.Fprintln(os.Stderr, "WARNING: password will be visible on screen")
			fmt.Print("Enter password:   ")
			fmt.Scanln(&password)
			fmt.Print("Confirm password: ")
			fmt.Scanln(&confirm)
		} else {
			password = readPasswordWithMask("Enter password:   ")
			confirm = readPasswordWithMask("Confirm password: ")
		}

		if password == "" {
			return fmt.Errorf("password cannot be empty")
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}

		return app.CreateAuthFile(username, password, overwrite)
	},
}

func init() {
	hashPasswordCmd.Flags().Bool("overwrite", false, "overwrite an existing auth file")
	hashPasswordCmd.Flags().Bool("insecure-unmask-password", false, "show password as plain text")
}

// readPasswordWithMask reads password input echoing asterisks. Falls back to
// fully hidden input when the terminal cannot be put in raw mode.
func readPasswordWithMask(prompt string) string {
	fmt.Print(prompt)

	oldState, err := term.GetState(int(syscall.Stdin))
	if err != nil {
		password, _ := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		return string(password)
	}
	defer term.Restore(int(syscall.Stdin), oldState)

	if _, err := term.MakeRaw(int(syscall.Stdin)); err != nil {
		password, _ := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		return string(password)
	}

	var password []byte
	reader := bufio.NewReader(os.Stdin)

	for {
		char, _, err := reader.ReadRune()
		if err != nil {
			break
		}

		switch char {
		case '\n', '\r':
			fmt.Println()
			return string(password)
		case 127, 8: // backspace
			if len(password) > 0 {
				password = password[:len(password)-1]
				fmt.Print("\b \b")
			}
		case 3: // Ctrl+C
			fmt.Println()
			os.Exit(1)
		default:
			if char >= 32 && char <= 126 {
				password = append(password, byte(char))
				fmt.Print("*")
			}
		}
	}

	fmt.Println()
	return string(password)
}
