package dto

// PaginationMeta describes the position of a page within a larger result set.
type PaginationMeta struct {
	Total   int64 `json:"total"`
	Skip    int   `json:"skip"`
	Limit   int   `json:"limit"`
	Page    int   `json:"page"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// PaginatedTransactionsResponse wraps a page of transactions with its meta block.
type PaginatedTransactionsResponse struct {
	Items []TransactionResponse `json:"items"`
	Meta  PaginationMeta        `json:"meta"`
}

// NewPaginationMeta computes page arithmetic for a skip/limit window.
func NewPaginationMeta(total int64, skip int, limit int) PaginationMeta {
	page := 1
	pages := 1
	if limit > 0 {
		page = (skip / limit) + 1
		pages = int((total + int64(limit) - 1) / int64(limit))
		if pages < 1 {
			pages = 1
		}
	}
	return PaginationMeta{
		Total:   total,
		Skip:    skip,
		Limit:   limit,
		Page:    page,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}
