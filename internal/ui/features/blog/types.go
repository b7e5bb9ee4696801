package blog

import (
	"context"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/cms"
)

// PostSource is the slice of the CMS client the blog needs. A nil source
// means no CMS is configured and the blog renders its launch placeholder.
type PostSource interface {
	ListPosts(ctx context.Context) ([]cms.Post, error)
	GetPost(ctx context.Context, slug string) (cms.Post, error)
}
