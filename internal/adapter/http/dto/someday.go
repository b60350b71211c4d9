package dto

type SomedayList struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Position  int    `json:"position"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type SomedayListRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// OrderRequest lists every id of a collection in its new order.
type OrderRequest struct {
	IDs []uint64 `json:"ids" binding:"required"`
}
