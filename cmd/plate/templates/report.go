package templates

// Report is what inspect knows about one mounted instance.
type Report struct {
	Mounted   bool
	Size      string
	ModelKeys []string
	Bindings  []BindingRow
}

type BindingRow struct {
	Node        string
	Tag         string
	Kind        string
	Path        string
	Value       string
	Subscribers int
}

func kindClass(kind string) string {
	return "kind-" + kind
}
