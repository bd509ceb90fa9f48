// Package views holds the view state of the closet client: the item form,
// the closet carousel, the filter modal, the outfit builder and the switcher
// that mounts exactly one of them at a time.
//
// Components are single-owner. Each one is driven by one goroutine (the REPL
// loop or the bubbletea update loop) and renders from its own state. The only
// state touched from another goroutine is a Notice, whose expiry timer runs on
// its own goroutine.
package views
