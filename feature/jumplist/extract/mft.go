package extract

import (
	"fmt"

	"jumplist-exporter/feature/jumplist/models"
)

// MFTRef is a formatted MFT entry/sequence pair. Missing halves stay empty.
type MFTRef struct {
	EntryNumber    string
	SequenceNumber string
}

// MFT takes the reference from the last file-entry extension block of the
// last item in the chain.
func MFT(chain []models.ShellItem) (MFTRef, bool) {
	refs := mftBlocks(chain)
	if len(refs) == 0 {
		return MFTRef{}, false
	}

	last := refs[len(refs)-1]
	if last.MFT == nil {
		return MFTRef{}, false
	}

	var ref MFTRef
	if last.MFT.EntryNumber != nil {
		ref.EntryNumber = fmt.Sprintf("0x%X", *last.MFT.EntryNumber)
	}
	if last.MFT.SequenceNumber != nil {
		ref.SequenceNumber = fmt.Sprintf("0x%X", *last.MFT.SequenceNumber)
	}
	return ref, true
}

// MFTAmbiguous reports whether the last chain item holds file-entry blocks
// with differing references, where first and last match would disagree.
func MFTAmbiguous(chain []models.ShellItem) bool {
	refs := mftBlocks(chain)
	if len(refs) < 2 {
		return false
	}
	return formatRef(refs[0].MFT) != formatRef(refs[len(refs)-1].MFT)
}

func mftBlocks(chain []models.ShellItem) []models.ExtensionBlock {
	if len(chain) == 0 {
		return nil
	}

	var blocks []models.ExtensionBlock
	for _, block := range chain[len(chain)-1].ExtensionBlocks {
		if block.Kind == models.ExtensionFileEntry {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

func formatRef(ref *models.MFTReference) string {
	if ref == nil {
		return ""
	}
	s := ""
	if ref.EntryNumber != nil {
		s = fmt.Sprintf("%d", *ref.EntryNumber)
	}
	if ref.SequenceNumber != nil {
		s += fmt.Sprintf("/%d", *ref.SequenceNumber)
	}
	return s
}
