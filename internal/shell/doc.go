// Package shell implements the command engine of vfsh.
//
// A Session owns one virtual tree and the current-directory cursor, and
// evaluates one input line at a time: the line is tokenized on whitespace,
// the first token selects a command, and the command resolves its path
// arguments against the cursor before mutating or querying the tree.
//
// Every failure is local to one evaluation: precondition checks run before
// any mutation, so a failed command leaves the tree untouched and the session
// usable. Commands that only affect the terminal (clear, exit) report a
// Signal in their Result instead of touching the tree; acting on the signal
// is the caller's job.
package shell
