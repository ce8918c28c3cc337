package pathutil_test

import (
	"fmt"

	"newsdesk/internal/handler/http/pathutil"
)

func ExampleNormalizePath() {
	fmt.Println(pathutil.NormalizePath("/api/articles/harga-bbm-naik"))
	fmt.Println(pathutil.NormalizePath("/api/admin/comments/42/approve"))
	fmt.Println(pathutil.NormalizePath("/api/rss"))
	// Output:
	// /api/articles/:key
	// /api/admin/comments/:id/approve
	// /api/rss
}
