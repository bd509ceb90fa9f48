// Package client talks to the closet HTTP API.
//
// # Overview
//
// Client is the transport-agnostic contract the views depend on; HTTPClient
// implements it over net/http against a base URL such as
// http://localhost:3001/closet:
//
//	GET    /            list items
//	GET    /outfits     list outfits
//	POST   /add         add item (multipart: type,color,style,occasion,image)
//	DELETE /delete/:id  delete item
//	DELETE /outfits/:id delete outfit
//	GET    /options     distinct values of ?category=
//	GET    /search      items matching ?search=&category=
//	POST   /outfits     save outfit (JSON)
//
// # Error Handling
//
// Non-2xx responses become *StatusError; transport failures wrap
// ErrUnavailable and undecodable bodies wrap ErrBadResponse. Match them with
// errors.Is / errors.As. Nothing is retried.
//
// Every request carries a fresh X-Request-ID that is also logged at debug
// level, so client logs can be matched with server logs.
package client
