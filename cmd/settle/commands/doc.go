// Package commands defines the settle CLI.
//
// Commands
//
//   - run            Compute who pays whom from NAME=AMOUNT pairs
//   - hash-password  Print a bcrypt hash for the server's AUTH_USERS
//
// run computes locally by default. With --remote it sends the same
// participants to a settleup server and prints the server's answer.
package commands
