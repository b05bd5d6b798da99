// Package render displays decoded images in the terminal using the kitty
// graphics protocol.
//
// Image bytes travel base64-encoded inside APC escape sequences. Payloads
// are split so each escape carries at most 4096 base64 symbols; every
// escape except the last announces that more data follows with m=1.
package render
