package upstream

import (
	"testing"

	"github.com/phrazzld/photos-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUser(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"id": 1,
		"name": "Leanne Graham",
		"username": "Bret",
		"email": "Sincere@april.biz",
		"address": {
			"street": "Kulas Light",
			"suite": "Apt. 556",
			"city": "Gwenborough",
			"zipcode": "92998-3874",
			"geo": {"lat": "-37.3159", "lng": "81.1496"}
		},
		"phone": "1-770-736-8031 x56442",
		"website": "hildegard.org",
		"company": {"name": "Romaguera-Crona", "catchPhrase": "Multi-layered client-server neural-net", "bs": "harness real-time e-markets"}
	}`)

	u, err := DecodeUser(body)
	require.NoError(t, err)

	assert.Equal(t, 1, u.ID)
	assert.Equal(t, "Bret", u.Username)
	assert.Equal(t, "Gwenborough", u.Address.City)
	assert.Equal(t, "81.1496", u.Address.Geo.Lng)
	assert.Equal(t, "Romaguera-Crona", u.Company.Name)
	assert.Equal(t, "Multi-layered client-server neural-net", u.Company.CatchPhrase)
}

func TestDecodeAlbumFieldTolerance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want domain.Album
	}{
		{
			name: "canonical casing",
			body: `{"userId": 1, "id": 2, "title": "quidem"}`,
			want: domain.Album{UserID: 1, ID: 2, Title: "quidem"},
		},
		{
			name: "pascal casing",
			body: `{"UserId": 1, "ID": 2, "Title": "quidem"}`,
			want: domain.Album{UserID: 1, ID: 2, Title: "quidem"},
		},
		{
			name: "missing fields default",
			body: `{"id": 3}`,
			want: domain.Album{ID: 3},
		},
		{
			name: "null fields default",
			body: `{"id": 3, "title": null, "userId": null}`,
			want: domain.Album{ID: 3},
		},
		{
			name: "numeric strings",
			body: `{"userId": "7", "id": "8", "title": "x"}`,
			want: domain.Album{UserID: 7, ID: 8, Title: "x"},
		},
		{
			name: "unknown fields ignored",
			body: `{"id": 4, "title": "x", "extra": {"nested": true}}`,
			want: domain.Album{ID: 4, Title: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DecodeAlbum([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodePhoto(t *testing.T) {
	t.Parallel()

	p, err := DecodePhoto([]byte(`{"albumId":1,"id":1,"title":"accusamus","url":"https://via.placeholder.com/600/92c952","thumbnailUrl":"https://via.placeholder.com/150/92c952"}`))
	require.NoError(t, err)
	assert.Equal(t, domain.Photo{
		AlbumID:      1,
		ID:           1,
		Title:        "accusamus",
		URL:          "https://via.placeholder.com/600/92c952",
		ThumbnailURL: "https://via.placeholder.com/150/92c952",
	}, p)
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	_, err := DecodeAlbum([]byte(`{"id": "abc"}`))
	assert.Error(t, err)

	_, err = DecodeAlbum([]byte(`{"id": 1.5}`))
	assert.Error(t, err)

	_, err = DecodeAlbum([]byte(`{"title": {"a": 1}}`))
	assert.Error(t, err)

	_, err = DecodeList([]byte(`{"id": 1}`), DecodeAlbum)
	assert.ErrorIs(t, err, errNotArray)

	_, err = DecodeList([]byte(`[{"id": "x"}]`), DecodeAlbum)
	assert.ErrorContains(t, err, "element 0")
}

func TestDecodeList(t *testing.T) {
	t.Parallel()

	albums, err := DecodeList([]byte(` [{"id":1,"userId":1,"title":"a"},{"id":2,"userId":1,"title":"b"}]`), DecodeAlbum)
	require.NoError(t, err)
	require.Len(t, albums, 2)
	assert.Equal(t, "b", albums[1].Title)

	empty, err := DecodeList([]byte(`[]`), DecodeAlbum)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
