package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan joins the context's span into err so failure reports can be
// matched with the log stream that produced them.
func WrapSpan(ctx context.Context, err error) error {
	v := ctx.Value(SpanKey)
	if v == nil {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", v.(Span)))
}
