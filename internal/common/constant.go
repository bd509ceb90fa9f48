package common

// RequestIDHeaderName is the HTTP header carrying a per-request correlation id.
const RequestIDHeaderName = "X-Request-ID"

// PlaceholderImage is shown in place of a missing item image URL.
const PlaceholderImage = "/placeholder.png"

// AppTitle is printed as the header of the client.
const AppTitle = "Closet"
