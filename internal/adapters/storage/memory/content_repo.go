package memory

import (
	"context"

	"petresq/internal/domain/content"
	"petresq/internal/domain/stories"
)

// StoriesRepo and BlogRepo are fixed snapshots; both collections are
// read-only in the API.
type StoriesRepo struct {
	items []stories.Story
}

func NewStoriesRepo(seed []stories.Story) *StoriesRepo {
	return &StoriesRepo{items: append([]stories.Story(nil), seed...)}
}

func (r *StoriesRepo) List(ctx context.Context) ([]stories.Story, error) {
	out := make([]stories.Story, len(r.items))
	copy(out, r.items)
	return out, nil
}

type BlogRepo struct {
	items []content.BlogPost
}

func NewBlogRepo(seed []content.BlogPost) *BlogRepo {
	return &BlogRepo{items: append([]content.BlogPost(nil), seed...)}
}

func (r *BlogRepo) List(ctx context.Context) ([]content.BlogPost, error) {
	out := make([]content.BlogPost, len(r.items))
	copy(out, r.items)
	return out, nil
}
