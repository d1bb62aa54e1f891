package base64

import (
	"encoding/base64"
	"strings"
)

func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, ";base64,")

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

func Decode(file string) ([]byte, error) {
	payload := file

	if idx := strings.Index(file, ";base64,"); idx != -1 {
		payload = file[idx+len(";base64,"):]
	}

	return base64.StdEncoding.DecodeString(payload)
}
