package extract

import (
	"strings"

	"jumplist-exporter/feature/jumplist/models"
)

// Inventory lists the type names of blocks in source order, comma separated.
func Inventory(blocks []models.ExtraDataBlock) string {
	names := make([]string, len(blocks))
	for i, block := range blocks {
		names[i] = string(block.Kind)
	}
	return strings.Join(names, ", ")
}
