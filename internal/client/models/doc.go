// Package models defines the closet catalog types exchanged with the API and
// the transient, UI-only state built on top of them (outfit drafts, filters).
package models
