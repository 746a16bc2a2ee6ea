// Package paths resolves the directories rxpipe reads and writes.
//
// Directories follow the XDG Base Directory layout through adrg/xdg, and
// each one has an RXPIPE_* override:
//
//   - RXPIPE_CONFIG_DIR: user configuration, default $XDG_CONFIG_HOME/rxpipe
//   - RXPIPE_STATE_DIR: log file, default $XDG_STATE_HOME/rxpipe
//   - RXPIPE_WORKSPACE: the workspace root, default the enclosing git
//     repository or the current directory
//
// Rulesets live in a "regex-rulesets" directory, either under the
// configuration directory or at the workspace root.
package paths
