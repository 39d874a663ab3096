package lookup

import "strings"

// Properties maps property keys ({format id}\property id) to descriptions.
type Properties struct {
	entries map[string]map[string]string
}

func loadProperties() (*Properties, error) {
	var doc struct {
		Properties map[string]map[string]string `yaml:"properties"`
	}
	if err := readEmbedded("properties.yaml", &doc); err != nil {
		return nil, err
	}

	p := &Properties{entries: make(map[string]map[string]string, len(doc.Properties))}
	for guid, ids := range doc.Properties {
		p.entries[normalizeGUID(guid)] = ids
	}
	return p, nil
}

// Describe returns the description of a property, or an empty string.
func (p *Properties) Describe(guid, id string) string {
	return p.entries[normalizeGUID(guid)][strings.TrimSpace(id)]
}

func normalizeGUID(guid string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(guid), "{}"))
}
