package extract

import (
	"strings"

	"jumplist-exporter/feature/jumplist/models"
)

// NoTargetIDs is reported when a shortcut carries no target ID list at all.
const NoTargetIDs = "(No target IDs present)"

// AbsolutePath rebuilds the target path from a shell item chain.
// Item values are joined with backslashes in chain order, an item without a
// value contributing an empty segment. When the chain is empty the link info
// paths are used instead:
// ShareName\CommonPath for network targets, LocalPath\CommonPath otherwise.
// A nil chain means no ID list was recorded and yields NoTargetIDs.
func AbsolutePath(chain []models.ShellItem, share *models.NetworkShareInfo, localPath, commonPath string) string {
	if chain == nil {
		return NoTargetIDs
	}

	if len(chain) > 0 {
		values := make([]string, len(chain))
		for i, item := range chain {
			values[i] = item.Value
		}
		return strings.Join(values, `\`)
	}

	if share != nil {
		return share.ShareName + `\` + commonPath
	}
	return localPath + `\` + commonPath
}

// ShortcutPath is AbsolutePath applied to a decoded shortcut.
func ShortcutPath(lnk *models.Shortcut) string {
	return AbsolutePath(lnk.TargetIDs, lnk.NetworkShareInfo, lnk.LocalPath, lnk.CommonPath)
}
