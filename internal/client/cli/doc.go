// Package cli provides the interactive closet command-line client.
//
// It wires configuration, the closet API client and the view switcher into a
// REPL. One view is mounted at a time and its commands act on that view's
// state:
//
//   - closet: browse items or outfits in a carousel, delete, open outfits,
//     or switch to the full-screen browser (browse)
//   - add: fill in and submit a new item with an image file
//   - outfits: search with filters, compose a draft and save it
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
