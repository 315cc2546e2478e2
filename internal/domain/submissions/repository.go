package submissions

import "context"

type Repository interface {
	List(ctx context.Context) ([]Application, error)
	Append(ctx context.Context, a Application) error
}
