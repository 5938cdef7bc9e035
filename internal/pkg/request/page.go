package request

import (
	"net/http"

	"github.com/peershare/lending-backend/internal/pkg/apperror"
)

// ErrInvalidPage is returned when from is negative or size is not positive.
var ErrInvalidPage = apperror.New(http.StatusBadRequest, "from must be non-negative and size must be positive")

// PageParams carries the offset-style pagination parameters the gateway
// sends (`from` = number of records to skip, `size` = page size).
type PageParams struct {
	From int `form:"from,default=0"`
	Size int `form:"size,default=10"`
}

// Page resolves the parameters to the index of the page containing the
// `from` offset. Offsets that are not exact multiples of the page size
// round down to the page boundary; the caller always receives the whole
// page, never a mid-page slice.
func (p PageParams) Page() (int, error) {
	if p.From < 0 || p.Size <= 0 {
		return 0, ErrInvalidPage
	}
	return p.From / p.Size, nil
}

// Offset returns the SQL offset of the resolved page, in rows.
func (p PageParams) Offset() (int, error) {
	page, err := p.Page()
	if err != nil {
		return 0, err
	}
	return page * p.Size, nil
}
