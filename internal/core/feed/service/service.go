package feedapp

import (
	"context"

	feedPort "yatube/internal/ports/feed"
	postPort "yatube/internal/ports/post"
)

// PostsPerPage is the fixed feed page size.
const PostsPerPage = 10

// FeedService composes the four paginated views over the post table.
type FeedService struct {
	FeedRepository feedPort.FeedRepository
}

func NewFeedService(repo feedPort.FeedRepository) *FeedService {
	return &FeedService{FeedRepository: repo}
}

// SiteFeed is every post on the site, newest first.
func (s *FeedService) SiteFeed(ctx context.Context, page int) (*feedPort.PageDTO, error) {
	return s.compose(ctx, feedPort.Filter{}, page)
}

func (s *FeedService) GroupFeed(ctx context.Context, groupID string, page int) (*feedPort.PageDTO, error) {
	return s.compose(ctx, feedPort.Filter{GroupID: groupID}, page)
}

func (s *FeedService) ProfileFeed(ctx context.Context, authorID string, page int) (*feedPort.PageDTO, error) {
	return s.compose(ctx, feedPort.Filter{AuthorID: authorID}, page)
}

// FollowFeed is every post by authors the given user follows.
func (s *FeedService) FollowFeed(ctx context.Context, userID string, page int) (*feedPort.PageDTO, error) {
	return s.compose(ctx, feedPort.Filter{FollowedBy: userID}, page)
}

func (s *FeedService) compose(ctx context.Context, f feedPort.Filter, page int) (*feedPort.PageDTO, error) {
	total, err := s.FeedRepository.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + PostsPerPage - 1) / PostsPerPage)
	if totalPages < 1 {
		totalPages = 1
	}

	// Out-of-range page numbers clamp to the nearest valid page; an empty
	// feed is a single empty page, not an error.
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	posts, err := s.FeedRepository.FindPage(ctx, f, (page-1)*PostsPerPage, PostsPerPage)
	if err != nil {
		return nil, err
	}

	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, postPort.ToDTO(p))
	}

	return &feedPort.PageDTO{
		Posts:       dtos,
		Number:      page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}, nil
}
