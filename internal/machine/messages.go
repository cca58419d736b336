package machine

import "encoding/base64"

// winMessage is the one visible success notification. It fires on the
// fifth digit's success - the last two digits guard nothing further.
const winMessage = "Whoa! You got it! The last two digits are on the house."

// finalMessageB64 hides the secondary message behind the seventh digit.
// With two digits left to brute force there is no point spending real
// obfuscation here; base64 keeps it out of a casual strings dump and
// nothing more.
const finalMessageB64 = "R29vZCBqb2IhIFlvdSBkaWQgaXQhIFlvdXIgcHJpemUgaXMgdGhlIHNhdGlzZmFjdGlvbiBvZiBhIGpvYiB3ZWxsIGRvbmUuIENvbmdyYXRzIQ=="

// finalMessage decodes the secondary celebratory message.
func finalMessage() string {
	raw, err := base64.StdEncoding.DecodeString(finalMessageB64)
	if err != nil {
		// The payload is a compile-time constant; this cannot happen
		// unless the constant itself was edited.
		return ""
	}
	return string(raw)
}
