package narrator

import (
	"fmt"

	"jumplist-exporter/feature/jumplist/extract"
	"jumplist-exporter/feature/jumplist/models"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"go.uber.org/zap"
)

// ExtraBlocks narrates the extra data blocks of a shortcut in source order.
func (n *Narrator) ExtraBlocks(blocks []models.ExtraDataBlock) {
	if len(blocks) == 0 {
		return
	}

	n.blank()
	n.heading(text.FgRed, "--- Extra blocks information ---")
	n.blank()

	for i := range blocks {
		n.extraBlock(&blocks[i])
		n.blank()
	}
}

func (n *Narrator) extraBlock(b *models.ExtraDataBlock) {
	switch {
	case b.Kind == models.BlockConsole && b.Console != nil:
		c := b.Console
		n.heading(text.FgYellow, ">> Console data block")
		n.printf("   Fill Attributes: %s", c.FillAttributes)
		n.printf("   Popup Attributes: %s", c.PopupFillAttributes)
		n.printf("   Buffer Size (Width x Height): %d x %d", c.BufferSizeX, c.BufferSizeY)
		n.printf("   Window Size (Width x Height): %d x %d", c.WindowSizeX, c.WindowSizeY)
		n.printf("   Origin (X/Y): %d/%d", c.WindowOriginX, c.WindowOriginY)
		n.printf("   Font Size: %d", c.FontSize)
		n.printf("   Is Bold: %t", c.IsBold)
		n.printf("   Face Name: %s", c.FaceName)
		n.printf("   Cursor Size: %d", c.CursorSize)
		n.printf("   Is Full Screen: %t", c.IsFullScreen)
		n.printf("   Is Quick Edit: %t", c.IsQuickEdit)
		n.printf("   Is Insert Mode: %t", c.IsInsertMode)
		n.printf("   Is Auto Positioned: %t", c.IsAutoPositioned)
		n.printf("   History Buffer Size: %d", c.HistoryBufferSize)
		n.printf("   History Buffer Count: %d", c.HistoryBufferCount)
		n.printf("   History Duplicates Allowed: %t", c.HistoryDuplicatesAllowed)
	case b.Kind == models.BlockConsoleFE && b.ConsoleFE != nil:
		n.heading(text.FgYellow, ">> Console FE data block")
		n.printf("   Code page: %d", b.ConsoleFE.CodePage)
	case b.Kind == models.BlockDarwin && b.Darwin != nil:
		n.heading(text.FgYellow, ">> Darwin data block")
		n.printf("   Application ID: %s", b.Darwin.ApplicationIdentifier)
	case b.Kind == models.BlockEnvironmentVariable && b.EnvironmentVariable != nil:
		n.heading(text.FgYellow, ">> Environment variable data block")
		n.printf("   Environment variables: %s", b.EnvironmentVariable.Value)
	case b.Kind == models.BlockIconEnvironment && b.IconEnvironment != nil:
		n.heading(text.FgYellow, ">> Icon environment data block")
		n.printf("   Icon path: %s", b.IconEnvironment.IconPath)
	case b.Kind == models.BlockKnownFolder && b.KnownFolder != nil:
		n.heading(text.FgYellow, ">> Known folder data block")
		n.printf("   Known folder GUID: %s ==> %s", b.KnownFolder.KnownFolderID, b.KnownFolder.KnownFolderName)
	case b.Kind == models.BlockPropertyStore:
		n.propertyStore(">> Property store data block (Format: GUID\\ID Description ==> Value)", "   ", b.PropertyStore)
	case b.Kind == models.BlockShim && b.Shim != nil:
		n.heading(text.FgYellow, ">> Shimcache data block")
		n.printf("   LayerName: %s", b.Shim.LayerName)
	case b.Kind == models.BlockSpecialFolder && b.SpecialFolder != nil:
		n.heading(text.FgYellow, ">> Special folder data block")
		n.printf("   Special Folder ID: %d", b.SpecialFolder.SpecialFolderID)
	case b.Kind == models.BlockTracker && b.Tracker != nil:
		n.tracker(b.Tracker)
	case b.Kind == models.BlockVistaIDList:
		n.heading(text.FgYellow, ">> Vista and above ID List data block")
		for _, item := range b.VistaIDList {
			n.printf("   %s ==> %s", item.FriendlyName, orNone(item.Value))
		}
	default:
		n.logger.Warn("Unmapped extra data block",
			zap.String("kind", string(b.Kind)),
			zap.String("raw", b.Raw))
		n.heading(text.FgHiRed, ">> Unmapped extra data block %s", b.Kind)
	}
}

func (n *Narrator) tracker(t *models.TrackerData) {
	mac := extract.NormalizeMAC(t.MacAddress)
	vendor := ""
	if mac != "" {
		vendor = extract.VendorFromMAC(mac, n.opts.Vendors)
	}

	n.heading(text.FgYellow, ">> Tracker database block")
	n.printf("   Machine ID: %s", t.MachineID)
	n.printf("   MAC Address: %s", mac)
	n.printf("   MAC Vendor: %s", vendor)
	n.printf("   Creation: %s", n.stamp(t.CreationTime, extract.DestListSentinelYear))
	n.blank()
	n.printf("   Volume Droid: %s", t.VolumeDroid)
	n.printf("   Volume Droid Birth: %s", t.VolumeDroidBirth)
	n.printf("   File Droid: %s", t.FileDroid)
	n.printf("   File Droid birth: %s", t.FileDroidBirth)
}

// propertyStore renders the properties of every sheet as a table.
func (n *Narrator) propertyStore(title, indent string, store *models.PropertyStore) {
	n.heading(text.FgYellow, "%s", title)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Key", "Description", "Value"})

	rows := 0
	if store != nil {
		for _, sheet := range store.Sheets {
			for _, prop := range sheet.Properties {
				desc := ""
				if n.opts.Properties != nil {
					desc = n.opts.Properties.Describe(sheet.GUID, prop.ID)
				}
				tw.AppendRow(table.Row{fmt.Sprintf("%s\\%s", sheet.GUID, prop.ID), desc, prop.Value})
				rows++
			}
		}
	}

	if rows == 0 {
		n.heading(text.FgYellow, "%s(Property store is empty)", indent)
		return
	}
	n.indented(indent, tw.Render())
}
