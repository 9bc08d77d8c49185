package dto

import (
	"net/http"
	"salon/shared/constant"
	"strconv"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty,min=1"`
	Limit   int    `json:"limit"    validate:"omitempty,min=1"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page and limit from the query string. Values that are missing or
// not positive are left at zero for Clamp to fill in.
func (q *QueryParams) FromRequest(r *http.Request) {
	query := r.URL.Query()

	q.Page = positive(query.Get(constant.RequestParamPage))
	q.Limit = positive(query.Get(constant.RequestParamLimit))
}

// Clamp defaults to the first page and caps the page size at maxLimit.
func (q *QueryParams) Clamp(maxLimit int) {
	if q.Page <= 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit <= 0 || q.Limit > maxLimit {
		q.Limit = maxLimit
	}
}

func positive(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0
	}

	return n
}
