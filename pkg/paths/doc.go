// Package paths resolves where the materialized bot configuration lives.
//
// The bot client reads its configuration from the current user's
// configuration directory, so the destination follows the XDG Base Directory
// specification on Unix-like systems and the platform equivalents elsewhere
// (as implemented by github.com/adrg/xdg):
//
//   - Linux/BSD: $XDG_CONFIG_HOME/mwbot.toml, default ~/.config/mwbot.toml
//   - macOS:     ~/Library/Application Support/mwbot.toml
//   - Windows:   %LOCALAPPDATA%\mwbot.toml
//
// # Environment Variables
//
//   - MWBOT_CONFIG_DIR: override the directory holding mwbot.toml
//
// # Usage
//
//	p, err := paths.New()
//	if err != nil {
//	    return err // DESTINATION_UNRESOLVABLE
//	}
//	dest := p.ConfigFile()
package paths
