package dto

// PageQuery carries normalized pagination parameters.
type PageQuery struct {
	Page  int
	Limit int
}

// Offset converts the page number into a row offset.
func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Normalize clamps the query to sane bounds using the deployment's
// default and maximum page sizes.
func (q PageQuery) Normalize(defaultLimit, maxLimit int) PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	return q
}

// PageMeta describes one page of a list response.
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// NewPageMeta computes page counts for a result set.
func NewPageMeta(total int64, q PageQuery) PageMeta {
	totalPages := int(total) / q.Limit
	if int(total)%q.Limit > 0 {
		totalPages++
	}
	return PageMeta{
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: totalPages,
	}
}
