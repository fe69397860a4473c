// Package media adapts platform capabilities -- image files, audio
// output, the picked-file drop directory -- into the narrow contracts
// the orchestrators consume.
package media

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"google.golang.org/genai"
)

// ImagePart reads a picked image file and converts it into the inline
// binary+mime part shape requests require, plus a data URI for display.
// The original mime type is preserved; sniffing is only a fallback for
// unknown extensions.
func ImagePart(path string) (*genai.Part, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	part := genai.NewPartFromBytes(data, mimeType)
	uri := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
	return part, uri, nil
}
