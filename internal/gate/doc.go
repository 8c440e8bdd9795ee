// Package gate implements the persisted passcode state machine that
// controls access to the application.
//
// The gate has three states: no passcode configured, unlocked, and
// locked. Setting a non-empty passcode immediately locks the gate;
// checking the correct passcode unlocks it. While no passcode exists
// the gate always reports unlocked, whatever the stored flag says.
//
// State lives in one mutex-guarded cell per process and is mirrored to
// a JSON file that is rewritten in full on every mutation. Passcodes
// are stored only as SHA-256 digests, never in plaintext. A corrupt or
// unreadable state file is recovered as "no passcode configured" rather
// than failing startup.
package gate
