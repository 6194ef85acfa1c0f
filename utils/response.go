package utils

import (
	"github.com/kataras/iris/v12"
)

// PageMeta is the pagination block every admin list endpoint returns.
type PageMeta struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
}

// JSONPage writes the shared list envelope: the rows under "data" and the
// pagination counters under "meta".
func JSONPage(ctx iris.Context, data interface{}, page, perPage int, total int64) {
	meta := PageMeta{Page: page, PerPage: perPage, Total: total}
	ctx.JSON(iris.Map{
		"data":  data,
		"meta":  meta,
		"links": iris.Map{},
	})
}

// JSONError writes a machine-readable error code alongside a human message.
func JSONError(ctx iris.Context, status int, code, message string) {
	ctx.StatusCode(status)
	ctx.JSON(iris.Map{"error": code, "message": message})
}
