package narrator

import (
	"jumplist-exporter/feature/jumplist/extract"
	"jumplist-exporter/feature/jumplist/models"

	"github.com/jedib0t/go-pretty/v6/text"
	"go.uber.org/zap"
)

// ShellItems narrates a target ID list item by item.
func (n *Narrator) ShellItems(items []models.ShellItem) {
	if len(items) == 0 {
		return
	}

	n.blank()
	n.heading(text.FgRed, "--- Target ID information (Format: Type ==> Value) ---")
	n.blank()
	n.printf("  Absolute path: %s", extract.AbsolutePath(items, nil, "", ""))
	n.blank()

	for i := range items {
		n.shellItem(&items[i])
		n.blank()
	}

	n.heading(text.FgRed, "--- End Target ID information ---")
}

func (n *Narrator) shellItem(item *models.ShellItem) {
	n.printf("  -%s ==> %s", item.FriendlyName, orNone(item.Value))

	switch item.Kind {
	case models.ShellItemDirectory, models.ShellItemFile, models.ShellItemUnicodeFile:
		n.printf("    Short name: %s", item.ShortName)
		n.printf("    Modified: %s", n.optional(item.Modified))
		n.extensionBlocks(item.ExtensionBlocks)
	case models.ShellItemDelegate:
		n.printf("    Modified: %s", n.optional(item.Modified))
		n.extensionBlocks(item.ExtensionBlocks)
	case models.ShellItemUsersPropertyView, models.ShellItemRootFolder, models.ShellItemControlPanel:
		if item.PropertyStore != nil && len(item.PropertyStore.Sheets) > 0 {
			n.propertyStore("  >> Property store (Format: GUID\\ID Description ==> Value)", "     ", item.PropertyStore)
		}
	case models.ShellItemControlPanelCat:
		if item.DriveLetter != "" {
			n.printf("  Drive letter: %s", item.DriveLetter)
		}
	case models.ShellItemUsersFilesFolder, models.ShellItemDrive, models.ShellItemNetworkLocation,
		models.ShellItemURI, models.ShellItemNetworkShare, models.ShellItemZipContents:
	default:
		n.logger.Warn("Unmapped shell item type",
			zap.String("kind", string(item.Kind)),
			zap.String("value", item.Value),
			zap.String("raw", item.Raw))
		n.heading(text.FgHiRed, ">> Unmapped shell item type %s", item.Kind)
	}
}

func (n *Narrator) extensionBlocks(blocks []models.ExtensionBlock) {
	if len(blocks) == 0 {
		return
	}

	n.printf("    Extension block count: %s", count(len(blocks)))
	n.blank()

	for i := range blocks {
		b := &blocks[i]
		n.printf("    --------- Block %s (%s) ---------", count(i), b.Kind)

		switch b.Kind {
		case models.ExtensionFileEntry:
			n.printf("    Long name: %s", b.LongName)
			if b.LocalizedName != "" {
				n.printf("    Localized name: %s", b.LocalizedName)
			}
			n.printf("    Created: %s", n.optional(b.CreatedOn))
			n.printf("    Last access: %s", n.optional(b.LastAccessed))
			if mft := b.MFT; mft != nil && mft.EntryNumber != nil && *mft.EntryNumber > 0 {
				var seq uint16
				if mft.SequenceNumber != nil {
					seq = *mft.SequenceNumber
				}
				n.printf("    MFT entry/sequence #: %d/%d (0x%X/0x%X)", *mft.EntryNumber, seq, *mft.EntryNumber, seq)
			}
		case models.ExtensionFileTimes:
			n.printf("    Filetime 1: %s, Filetime 2: %s", n.optional(b.FileTime1), n.optional(b.FileTime2))
		case models.ExtensionGUID:
			n.printf("    GUID: %s (%s)", b.GUID, b.GUIDFolder)
		case models.ExtensionDocType:
			n.printf("    File document type: %s", b.FileDocumentType)
		default:
			n.logger.Debug("Unmapped extension block", zap.String("kind", string(b.Kind)), zap.String("raw", b.Raw))
			n.printf("    %s", orNone(b.Raw))
		}
	}
}
