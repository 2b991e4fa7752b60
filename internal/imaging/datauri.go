package imaging

import (
	"encoding/base64"
	"fmt"
)

// DataURI inlines an image as a base64 data URI. This is the storage
// fallback: when the bucket is unreachable the URI is stored in place of a
// URL and renders identically in the storefront.
func DataURI(contentType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
}
