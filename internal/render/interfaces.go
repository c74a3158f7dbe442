package render

// AllInterfacesLabel is the sentinel option capturing on every interface
const AllInterfacesLabel = "All Interfaces"

// Option is one entry of the interface selector
type Option struct {
	Value    string
	Label    string
	Disabled bool
}

// InterfaceOptions builds the selector from the catalog response. The "All
// Interfaces" sentinel always comes first, including when loading failed.
func InterfaceOptions(names []string, err error) []Option {
	opts := []Option{{Value: "", Label: AllInterfacesLabel}}

	if err != nil {
		return append(opts, Option{Label: "Error loading interfaces", Disabled: true})
	}

	for _, name := range names {
		opts = append(opts, Option{Value: name, Label: name})
	}
	return opts
}

// LoadingOptions is the selector content while the catalog request is in flight
func LoadingOptions() []Option {
	return []Option{{Label: "Loading interfaces...", Disabled: true}}
}
