package extract

import (
	"fmt"
	"strings"
	"time"

	"jumplist-exporter/feature/jumplist/models"
)

// UnknownVendor is reported when a MAC prefix is not in the OUI table.
const UnknownVendor = "(Unknown vendor)"

const zeroMAC = "00:00:00:00:00:00"

// VendorLookup resolves an OUI prefix (AA-BB-CC) to a vendor name.
type VendorLookup interface {
	Vendor(oui string) (string, bool)
}

// TrackerFacts are the values taken from a shortcut's tracker block.
type TrackerFacts struct {
	MachineID       string
	MacAddress      string
	CreationTime    time.Time
	HasCreationTime bool
	VendorName      string
	Block           *models.TrackerData
}

// Tracker returns the facts of the first tracker block in blocks, or nil when
// there is none. Block names are matched ignoring case. Additional tracker
// blocks are reported through models.ErrMultipleTrackers alongside the facts
// of the first one.
func Tracker(blocks []models.ExtraDataBlock, vendors VendorLookup) (*TrackerFacts, error) {
	var first *models.TrackerData
	found := 0

	for i := range blocks {
		if !strings.EqualFold(string(blocks[i].Kind), string(models.BlockTracker)) || blocks[i].Tracker == nil {
			continue
		}
		found++
		if first == nil {
			first = blocks[i].Tracker
		}
	}

	if first == nil {
		return nil, nil
	}

	created, ok := Normalize(first.CreationTime, DestListSentinelYear)
	facts := &TrackerFacts{
		MachineID:       first.MachineID,
		MacAddress:      NormalizeMAC(first.MacAddress),
		CreationTime:    created,
		HasCreationTime: ok,
		Block:           first,
	}
	if facts.MacAddress != "" {
		facts.VendorName = VendorFromMAC(facts.MacAddress, vendors)
	}

	if found > 1 {
		return facts, fmt.Errorf("%w: %d found", models.ErrMultipleTrackers, found)
	}
	return facts, nil
}

// NormalizeMAC returns mac unchanged, or empty when it is the all-zero address.
func NormalizeMAC(mac string) string {
	if strings.ReplaceAll(strings.TrimSpace(mac), "-", ":") == zeroMAC {
		return ""
	}
	return mac
}

// VendorFromMAC looks up the vendor owning the first three octets of mac.
func VendorFromMAC(mac string, vendors VendorLookup) string {
	if vendors == nil {
		return UnknownVendor
	}

	octets := strings.FieldsFunc(mac, func(r rune) bool { return r == ':' || r == '-' })
	if len(octets) > 3 {
		octets = octets[:3]
	}
	oui := strings.ToUpper(strings.Join(octets, "-"))

	if vendor, ok := vendors.Vendor(oui); ok {
		return vendor
	}
	return UnknownVendor
}
