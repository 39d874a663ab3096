package narrator

import (
	"jumplist-exporter/feature/jumplist/extract"
	"jumplist-exporter/feature/jumplist/models"
	"jumplist-exporter/feature/jumplist/reconcile"

	"github.com/jedib0t/go-pretty/v6/text"
	"go.uber.org/zap"
)

// Automatic narrates an automatic destinations container. With withDir set,
// directory streams missing from the DestList are narrated too.
func (n *Narrator) Automatic(auto *models.AutomaticDestination, withDir bool) {
	n.heading(text.FgRed, "Source file: %s", auto.SourceFile)
	n.blank()

	n.heading(text.FgYellow, "--- AppId information ---")
	n.printf("  AppID: %s", auto.AppID.ID)
	n.printf("  Description: %s", auto.AppID.Description)
	n.blank()

	n.heading(text.FgYellow, "--- DestList information ---")
	n.printf("  Expected DestList entries:  %s", count(auto.DestListCount))
	n.printf("  Actual DestList entries: %s", count(len(auto.DestListEntries)))
	n.printf("  DestList version: %d", auto.DestListVersion)
	if mismatch := reconcile.CheckConsistency(auto); mismatch != nil {
		n.blank()
		n.heading(text.FgHiRed, "  There are more items in the Directory (%s) than are contained in the DestList (%s). Use --withDir to view/export them",
			count(mismatch.Actual), count(mismatch.Expected))
	}
	if auto.HasPropertyStore() {
		n.blank()
		n.propertyStore(">> DestList property store", "  ", auto.PropertyStore)
	}
	n.blank()

	n.heading(text.FgYellow, "--- DestList entries ---")
	for i := range auto.DestListEntries {
		entry := &auto.DestListEntries[i]
		key := reconcile.EntryKey(entry.EntryNumber)

		n.printf("Entry #: %s", key)
		n.printf("  MRU: %d", entry.MRUPosition)
		n.printf("  Path: %s", entry.Path)
		n.printf("  Pinned: %t", entry.Pinned)
		n.printf("  Created on: %s", n.stamp(entry.CreatedOn, extract.DestListSentinelYear))
		n.printf("  Last modified: %s", n.stamp(entry.LastModified, extract.DestListSentinelYear))
		n.printf("  Hostname: %s", entry.Hostname)
		n.printf("  Mac Address: %s", extract.NormalizeMAC(entry.MacAddress))
		n.printf("  Interaction count: %s", count(entry.InteractionCount))
		n.blank()

		lnk := entry.Shortcut
		if lnk == nil {
			lnk, _ = auto.ShortcutByName(key)
		}
		n.heading(text.FgRed, "--- Lnk information ---")
		n.Shortcut(lnk)
		n.blank()
	}

	if withDir {
		n.orphans(auto)
	}
}

func (n *Narrator) orphans(auto *models.AutomaticDestination) {
	n.heading(text.FgHiRed, "Directory entries not represented by DestList entries")

	for _, orphan := range reconcile.Plan(auto).Orphans {
		lnk, ok := auto.ShortcutByName(orphan.Name)
		if !ok {
			n.logger.Debug("No lnk file found for directory entry", zap.String("entry", orphan.Name))
			continue
		}
		n.printf("Directory Name: %s", orphan.Name)
		n.Shortcut(lnk)
		n.blank()
	}
}

// Custom narrates a custom destinations container.
func (n *Narrator) Custom(custom *models.CustomDestination) {
	n.heading(text.FgRed, "Source file: %s", custom.SourceFile)
	n.blank()

	n.heading(text.FgYellow, "--- AppId information ---")
	n.printf("  AppID: %s, Description: %s", custom.AppID.ID, custom.AppID.Description)
	n.heading(text.FgYellow, "--- DestList information ---")
	n.printf("  Entries:  %s", count(len(custom.Entries)))
	n.blank()

	for i := range custom.Entries {
		entry := &custom.Entries[i]
		n.heading(text.FgYellow, "  Entry #: %d, lnk count: %s Rank: %g", i, count(len(entry.Shortcuts)), entry.Rank)
		if entry.Name != "" {
			n.printf("   Name: %s", entry.Name)
		}
		n.blank()

		for j := range entry.Shortcuts {
			n.heading(text.FgYellow, "--- Lnk #%s information ---", count(j))
			n.Shortcut(&entry.Shortcuts[j])
			n.blank()
		}
	}
}
