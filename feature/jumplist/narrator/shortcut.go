package narrator

import (
	"jumplist-exporter/feature/jumplist/extract"
	"jumplist-exporter/feature/jumplist/models"

	"github.com/jedib0t/go-pretty/v6/text"
)

// Shortcut narrates one shortcut at the configured detail level.
func (n *Narrator) Shortcut(lnk *models.Shortcut) {
	if lnk == nil {
		n.printf("  (lnk file not present)")
		return
	}

	h := lnk.Header
	switch n.opts.Detail {
	case DetailFull:
		n.header(lnk)
		n.stringData(lnk, "")
		n.linkInfo(lnk)
		n.ShellItems(lnk.TargetIDs)
		n.ExtraBlocks(lnk.ExtraBlocks)
		return
	case DetailLink:
		n.printf("  Lnk target created: %s", n.stamp(h.TargetCreated, extract.HeaderSentinelYear))
		n.printf("  Lnk target modified: %s", n.stamp(h.TargetModified, extract.HeaderSentinelYear))
		n.printf("  Lnk target accessed: %s", n.stamp(h.TargetAccessed, extract.HeaderSentinelYear))
		n.stringData(lnk, "  ")
		n.linkInfo(lnk)
	}

	n.blank()
	n.printf("  Absolute path: %s", extract.ShortcutPath(lnk))
}

func (n *Narrator) header(lnk *models.Shortcut) {
	h := lnk.Header
	n.heading(text.FgYellow, "--- Header ---")
	n.printf("  Target created:  %s", n.stamp(h.TargetCreated, extract.HeaderSentinelYear))
	n.printf("  Target modified: %s", n.stamp(h.TargetModified, extract.HeaderSentinelYear))
	n.printf("  Target accessed: %s", n.stamp(h.TargetAccessed, extract.HeaderSentinelYear))
	n.blank()
	n.printf("  File size: %s", count(int(h.FileSize)))
	n.printf("  Flags: %s", h.DataFlags)
	n.printf("  File attributes: %s", h.FileAttributes)
	if h.HotKey != "" {
		n.printf("  Hot key: %s", h.HotKey)
	}
	n.printf("  Icon index: %d", h.IconIndex)
	n.printf("  Show window: %s", h.ShowWindow)
	n.blank()
}

// stringData prints the optional string data announced by the header flags.
func (n *Narrator) stringData(lnk *models.Shortcut, indent string) {
	flags := lnk.Header.DataFlags
	if flags.Has(models.HasName) {
		n.printf("%sName: %s", indent, lnk.Name)
	}
	if flags.Has(models.HasRelativePath) {
		n.printf("%sRelative Path: %s", indent, lnk.RelativePath)
	}
	if flags.Has(models.HasWorkingDir) {
		n.printf("%sWorking Directory: %s", indent, lnk.WorkingDirectory)
	}
	if flags.Has(models.HasArguments) {
		n.printf("%sArguments: %s", indent, lnk.Arguments)
	}
	if flags.Has(models.HasIconLocation) {
		n.printf("%sIcon Location: %s", indent, lnk.IconLocation)
	}
}

func (n *Narrator) linkInfo(lnk *models.Shortcut) {
	if !lnk.Header.DataFlags.Has(models.HasLinkInfo) {
		return
	}

	n.blank()
	n.heading(text.FgRed, "--- Link information ---")
	n.printf("Flags: %s", lnk.LocationFlags)

	if v := lnk.VolumeInfo; v != nil {
		label := v.Label
		if label == "" {
			label = "(No label)"
		}
		n.blank()
		n.heading(text.FgYellow, ">>Volume information")
		n.printf("  Drive type: %s", v.DriveType)
		n.printf("  Serial number: %s", v.SerialNumber)
		n.printf("  Label: %s", label)
	}

	if s := lnk.NetworkShareInfo; s != nil {
		n.blank()
		n.heading(text.FgYellow, "  Network share information")
		if s.DeviceName != "" {
			n.printf("    Device name: %s", s.DeviceName)
		}
		n.printf("    Share name: %s", s.ShareName)
		n.printf("    Provider type: %s", s.ProviderType)
		n.printf("    Share flags: %s", s.ShareFlags)
		n.blank()
	}

	if lnk.LocalPath != "" {
		n.printf("  Local path: %s", lnk.LocalPath)
	}
	if lnk.CommonPath != "" {
		n.printf("  Common path: %s", lnk.CommonPath)
	}
}
