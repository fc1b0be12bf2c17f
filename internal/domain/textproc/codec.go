package textproc

import (
	"encoding/base64"
	"strings"
)

// Base64Encode encodes data with the standard alphabet and '=' padding.
// Every 3 input bytes become 4 output characters; empty input encodes to "".
func Base64Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

const charsetMeta = `<meta charset="UTF-8">`

// HTMLDataURL wraps an HTML document in a base64 data URL that a browser can
// load directly. When the document has a <head> but declares no charset, a
// UTF-8 meta tag is inserted right after the first <head>.
func HTMLDataURL(html string) string {
	if strings.Contains(html, "<head>") && !strings.Contains(html, "charset=") {
		html = strings.Replace(html, "<head>", "<head>\n    "+charsetMeta, 1)
	}
	return "data:text/html;charset=utf-8;base64," + Base64Encode([]byte(html))
}
