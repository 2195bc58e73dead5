package slotting

// Instance describes one slotting problem: a set of storage locations
// with fixed area and travel depth, a set of products with pick
// frequencies, and the number of storage classes to partition them into.
type Instance struct {
	Name    string `json:"name"`
	Comment string `json:"comment"`
	Type    string `json:"type"`

	Products  int `json:"products"`
	Classes   int `json:"classes"`
	Locations int `json:"locations"`

	Area   []float64 `json:"area"`
	Depth  []float64 `json:"depth"`
	Demand []float64 `json:"demand"`

	FixedCost  float64 `json:"fixed_cost"`
	HandleCost float64 `json:"handle_cost"`

	// Optional bounds for the depth-to-area ratio variables.
	// Zero values mean "derive from the data".
	RMin float64 `json:"r_min,omitempty"`
	RMax float64 `json:"r_max,omitempty"`

	Solution *Solution `json:"solution,omitempty"`
}

type Solution struct {
	Obj     float64 `json:"obj"`
	LBound  float64 `json:"lbound"`
	Optimal bool    `json:"optimal"`
	Status  string  `json:"status"`

	// Class index per product, and per location (-1 for idle locations).
	ProductClass  []int `json:"product_class"`
	LocationClass []int `json:"location_class"`

	Time    string  `json:"time"`
	System  SysInfo `json:"system"`
	Comment string  `json:"comment"`
}

// SysInfo saves the basic system information
type SysInfo struct {
	Platform string
	CPU      string
	RAM      string
}
