// ABOUTME: Passcode subcommands and terminal secret prompting
// ABOUTME: Reads passcodes without echo when stdin is a terminal

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

func (a *app) cmdPasscode(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: moodjourney passcode <set|clear|check|lock|unlock|status>")
	}

	switch args[0] {
	case "set":
		passcode, err := promptSecret("New passcode: ")
		if err != nil {
			return err
		}
		confirm, err := promptSecret("Confirm passcode: ")
		if err != nil {
			return err
		}
		if passcode != confirm {
			return fmt.Errorf("passcodes do not match")
		}
		if err := a.gate.SetPasscode(passcode); err != nil {
			return err
		}
		if passcode == "" {
			fmt.Println("Passcode cleared.")
		} else {
			fmt.Println("Passcode set. The journal is now locked.")
		}
		return nil

	case "clear":
		if err := a.gate.DeletePasscode(); err != nil {
			return err
		}
		fmt.Println("Passcode cleared.")
		return nil

	case "check":
		passcode, err := promptSecret("Passcode: ")
		if err != nil {
			return err
		}
		ok, err := a.gate.CheckPasscode(passcode)
		if err != nil {
			return err
		}
		if ok {
			fmt.Println("Correct. The journal is unlocked.")
		} else {
			fmt.Println("Incorrect.")
		}
		return nil

	case "lock":
		if err := a.gate.SetLocked(true); err != nil {
			return err
		}
		fmt.Println("Locked.")
		return nil

	case "unlock":
		if err := a.gate.SetLocked(false); err != nil {
			return err
		}
		fmt.Println("Unlocked.")
		return nil

	case "status":
		if !a.gate.HasPasscode() {
			fmt.Println("No passcode is set.")
		} else if a.gate.IsLocked() {
			fmt.Println("Passcode set; journal is locked.")
		} else {
			fmt.Println("Passcode set; journal is unlocked.")
		}
		return nil

	default:
		return fmt.Errorf("unknown passcode command: %s", args[0])
	}
}

// promptSecret reads a secret from stdin, disabling echo when stdin is
// a terminal.
func promptSecret(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading passcode: %w", err)
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading passcode: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
