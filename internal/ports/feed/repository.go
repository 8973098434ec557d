package feed

import (
	"context"

	"yatube/internal/core/post"
	postPort "yatube/internal/ports/post"
)

// Filter narrows a feed query. Zero value means the whole site. FollowedBy
// selects posts whose author is followed by the given user.
type Filter struct {
	GroupID    string
	AuthorID   string
	FollowedBy string
}

// FeedRepository reads pages of posts ordered by creation time descending,
// with Author and Group preloaded.
type FeedRepository interface {
	Count(ctx context.Context, f Filter) (int64, error)
	FindPage(ctx context.Context, f Filter, offset, limit int) ([]*post.Post, error)
}

// PageDTO is one page of a feed plus the paginator metadata templates need.
type PageDTO struct {
	Posts       []*postPort.PostDTO `json:"posts"`
	Number      int                 `json:"number"`
	TotalPages  int                 `json:"total_pages"`
	TotalItems  int64               `json:"total_items"`
	HasNext     bool                `json:"has_next"`
	HasPrevious bool                `json:"has_previous"`
}

// NextNumber and PrevNumber feed the paginator links in templates.
func (p *PageDTO) NextNumber() int { return p.Number + 1 }

func (p *PageDTO) PrevNumber() int { return p.Number - 1 }
