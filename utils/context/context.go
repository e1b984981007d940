package context

import (
	"context"

	"github.com/wastenot/wastenot/constant"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func GetBranchID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.BranchIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
