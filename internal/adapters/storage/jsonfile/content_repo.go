package jsonfile

import (
	"context"

	"petresq/internal/domain/content"
	"petresq/internal/domain/stories"
)

type StoriesRepo struct {
	store *Store[stories.Story]
}

func NewStoriesRepo(path string) *StoriesRepo {
	return &StoriesRepo{store: NewStore[stories.Story](path)}
}

func (r *StoriesRepo) List(ctx context.Context) ([]stories.Story, error) {
	return r.store.LoadAll(ctx)
}

type BlogRepo struct {
	store *Store[content.BlogPost]
}

func NewBlogRepo(path string) *BlogRepo {
	return &BlogRepo{store: NewStore[content.BlogPost](path)}
}

func (r *BlogRepo) List(ctx context.Context) ([]content.BlogPost, error) {
	return r.store.LoadAll(ctx)
}
