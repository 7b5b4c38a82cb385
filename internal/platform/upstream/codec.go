package upstream

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/phrazzld/photos-gateway/internal/domain"
)

// Decoder turns one upstream JSON object into an entity.
type Decoder[T any] func(data []byte) (T, error)

// fields maps lower-cased wire names to setters. Wire names are matched
// case-insensitively; unknown names are ignored and absent or null fields
// leave the zero value.
type fields map[string]func(raw json.RawMessage) error

var errNotArray = errors.New("expected a JSON array")

// DecodeList decodes a top-level JSON array, applying decode to each element.
func DecodeList[T any](data []byte, decode Decoder[T]) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errNotArray
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(trimmed, &elements); err != nil {
		return nil, err
	}

	result := make([]T, 0, len(elements))
	for i, element := range elements {
		entity, err := decode(element)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		result = append(result, entity)
	}
	return result, nil
}

// DecodeUser decodes a user object.
func DecodeUser(data []byte) (domain.User, error) {
	var u domain.User
	err := decodeObject(data, fields{
		"id":       intField(&u.ID),
		"name":     stringField(&u.Name),
		"username": stringField(&u.Username),
		"email":    stringField(&u.Email),
		"address":  objectField(addressFields(&u.Address)),
		"phone":    stringField(&u.Phone),
		"website":  stringField(&u.Website),
		"company": objectField(fields{
			"name":        stringField(&u.Company.Name),
			"catchphrase": stringField(&u.Company.CatchPhrase),
			"bs":          stringField(&u.Company.BS),
		}),
	})
	return u, err
}

func addressFields(a *domain.Address) fields {
	return fields{
		"street":  stringField(&a.Street),
		"suite":   stringField(&a.Suite),
		"city":    stringField(&a.City),
		"zipcode": stringField(&a.Zipcode),
		"geo": objectField(fields{
			"lat": stringField(&a.Geo.Lat),
			"lng": stringField(&a.Geo.Lng),
		}),
	}
}

// DecodeAlbum decodes an album object.
func DecodeAlbum(data []byte) (domain.Album, error) {
	var a domain.Album
	err := decodeObject(data, fields{
		"userid": intField(&a.UserID),
		"id":     intField(&a.ID),
		"title":  stringField(&a.Title),
	})
	return a, err
}

// DecodePhoto decodes a photo object.
func DecodePhoto(data []byte) (domain.Photo, error) {
	var p domain.Photo
	err := decodeObject(data, fields{
		"albumid":      intField(&p.AlbumID),
		"id":           intField(&p.ID),
		"title":        stringField(&p.Title),
		"url":          stringField(&p.URL),
		"thumbnailurl": stringField(&p.ThumbnailURL),
	})
	return p, err
}

func decodeObject(data []byte, f fields) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	for key, value := range raw {
		set, ok := f[strings.ToLower(key)]
		if !ok || isNull(value) {
			continue
		}
		if err := set(value); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
	}
	return nil
}

func objectField(f fields) func(json.RawMessage) error {
	return func(raw json.RawMessage) error {
		return decodeObject(raw, f)
	}
}

// stringField accepts JSON strings; numbers and booleans keep their literal text.
func stringField(dst *string) func(json.RawMessage) error {
	return func(raw json.RawMessage) error {
		if len(raw) > 0 && raw[0] == '"' {
			return json.Unmarshal(raw, dst)
		}
		if len(raw) > 0 && (raw[0] == '{' || raw[0] == '[') {
			return fmt.Errorf("expected string, got %s", kindOf(raw))
		}
		*dst = string(raw)
		return nil
	}
}

// intField accepts integral JSON numbers and numeric strings.
func intField(dst *int) func(json.RawMessage) error {
	return func(raw json.RawMessage) error {
		text := string(raw)
		if len(raw) > 0 && raw[0] == '"' {
			if err := json.Unmarshal(raw, &text); err != nil {
				return err
			}
			text = strings.TrimSpace(text)
			if text == "" {
				return nil
			}
		}

		if n, err := strconv.Atoi(text); err == nil {
			*dst = n
			return nil
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return fmt.Errorf("expected integer, got %s", text)
		}
		*dst = int(f)
		return nil
	}
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

func kindOf(raw json.RawMessage) string {
	if raw[0] == '{' {
		return "object"
	}
	return "array"
}
