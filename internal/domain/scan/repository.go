package scan

import "context"

type Repository interface {
	Insert(ctx context.Context, event *Event) error
}
