package historyfile

import (
	"os/user"
	"path/filepath"
	"strings"
)

// toUserFriendlyPath converts an absolute path to a ~/-based path if it's
// under the user's home directory. If the home directory cannot be determined
// or the path is not under home, it returns the original path.
func toUserFriendlyPath(absPath string) string {
	usr, err := user.Current()
	if err != nil {
		return absPath
	}
	homeDir := usr.HomeDir

	if !strings.HasPrefix(absPath, homeDir) {
		return absPath
	}

	if absPath == homeDir {
		return "~"
	}

	relPath, err := filepath.Rel(homeDir, absPath)
	if err != nil {
		return absPath
	}
	return filepath.Join("~", relPath)
}
