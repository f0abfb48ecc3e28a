package writers

import (
	"context"
	"io"

	"kofamscan/internal/hitdetail"
)

func init() {
	Register(FormatDetail, func(ctx context.Context, w io.Writer, r Report) error {
		return hitdetail.New(r.Detail).FormatContext(ctx, w, r.Source)
	})
}
