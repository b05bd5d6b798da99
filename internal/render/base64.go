package render

import "encoding/base64"

// Base64 encodes data with the standard alphabet and '=' padding.
func Base64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
