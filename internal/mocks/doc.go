// Package mocks provides centralized mock implementations for testing.
//
// Each mock has a function field per interface method. When a function
// field is nil the mock falls back to simple defaults (canned data, a
// configured error, or a recorded call), so most tests only set what they
// assert on.
//
//	upstream := &mocks.MockUpstream[domain.Album]{
//	    Data: map[string][]domain.Album{"albums": {{ID: 1, UserID: 1, Title: "a"}}},
//	}
//	repo := repository.New(repository.AlbumKind, overlay, upstream, logger)
package mocks
