package storage

// Material is one BOM line of a plan: what the selected plan row needs
// from stock.
type Material struct {
	ID           string `json:"id"`
	MaterialCode string `json:"materialCode"`
	MaterialName string `json:"materialName"`
	Unit         string `json:"unit"`
	RequiredQty  int    `json:"requiredQty"`
	Inventory    int    `json:"inventory"`
}

// PlanFilter narrows a grid query. From/To bound the quantity horizon
// (canonical day keys); Workshop optionally restricts the row set.
type PlanFilter struct {
	From     string
	To       string
	Workshop string
}
