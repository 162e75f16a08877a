package models

// Report is the summary printed by the terminal and HTML reports.
type Report struct {
	Filter       Filter              `json:"-"`
	Overview     Overview            `json:"overview"`
	TopGroups    []ProductGroup      `json:"top_groups"`
	Regions      []RegionAggregate   `json:"regions"`
	States       []StateAggregate    `json:"states"`
	Retailers    []RetailerAggregate `json:"retailers"`
	TotalGroups  int                 `json:"total_groups"`
	WidestSpread *ProductGroup       `json:"widest_spread,omitempty"`
}
