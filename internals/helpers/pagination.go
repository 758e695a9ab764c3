// file: internals/helpers/pagination.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Pagination struct {
	Skip    int   `json:"skip"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	Count   int   `json:"count"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

type Paging struct {
	Skip  int
	Limit int
}

// ResolvePaging reads ?skip= & ?limit= (offset is accepted as an alias of skip).
// maxLimit 0 means no cap.
func ResolvePaging(c *fiber.Ctx, defaultLimit, maxLimit int) Paging {
	skipStr := strings.TrimSpace(c.Query("skip"))
	if skipStr == "" {
		skipStr = strings.TrimSpace(c.Query("offset", "0"))
	}
	skip, _ := strconv.Atoi(skipStr)
	if skip < 0 {
		skip = 0
	}

	limit, _ := strconv.Atoi(strings.TrimSpace(c.Query("limit")))
	if limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return Paging{Skip: skip, Limit: limit}
}

func BuildPagination(total int64, skip, limit int) Pagination {
	if limit <= 0 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}
	return Pagination{
		Skip:    skip,
		Limit:   limit,
		Total:   total,
		HasNext: int64(skip+limit) < total,
		HasPrev: skip > 0,
	}
}
