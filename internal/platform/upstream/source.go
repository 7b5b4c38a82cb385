package upstream

import (
	"context"
	"fmt"

	"github.com/phrazzld/photos-gateway/internal/domain"
)

// Source is a typed view of one upstream entity kind.
type Source[T any] struct {
	client *Client
	decode Decoder[T]
}

// NewSource binds client to the decoder for T.
func NewSource[T any](client *Client, decode Decoder[T]) *Source[T] {
	return &Source[T]{client: client, decode: decode}
}

// NewUserSource returns the Source for users.
func NewUserSource(client *Client) *Source[domain.User] {
	return NewSource(client, DecodeUser)
}

// NewAlbumSource returns the Source for albums.
func NewAlbumSource(client *Client) *Source[domain.Album] {
	return NewSource(client, DecodeAlbum)
}

// NewPhotoSource returns the Source for photos.
func NewPhotoSource(client *Client) *Source[domain.Photo] {
	return NewSource(client, DecodePhoto)
}

// FetchAll retrieves and decodes the collection at path.
func (s *Source[T]) FetchAll(ctx context.Context, path string) ([]T, error) {
	body, err := s.client.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	items, err := DecodeList(body, s.decode)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", domain.ErrUpstreamUnavailable, path, err)
	}
	return items, nil
}

// FetchByPath retrieves a relationship collection such as users/5/albums.
func (s *Source[T]) FetchByPath(ctx context.Context, path string) ([]T, error) {
	return s.FetchAll(ctx, path)
}

// Push mirrors entity to the upstream without reporting the outcome.
func (s *Source[T]) Push(ctx context.Context, method, path string, entity T) {
	s.client.Push(ctx, method, path, entity)
}

// Send issues method against path and reports failure. A nil entity sends
// no body.
func (s *Source[T]) Send(ctx context.Context, method, path string, entity *T) error {
	if entity == nil {
		return s.client.Send(ctx, method, path, nil)
	}
	return s.client.Send(ctx, method, path, *entity)
}
