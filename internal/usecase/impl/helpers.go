// Package impl contains the implementation of the application's business logic.
package impl

import (
	"encoding/base64"
	"strings"

	domainerrors "alufactory/internal/domain/errors"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// normalizePage clamps raw pagination input to sane bounds.
func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	return page, perPage
}

// pageCount computes the number of pages for a total at the given size.
func pageCount(total int64, perPage int) int {
	if total == 0 {
		return 0
	}

	pages := int(total) / perPage
	if int(total)%perPage != 0 {
		pages++
	}

	return pages
}

// decodeDocumentBase64 strips an optional data-URI prefix
// ("data:application/pdf;base64,...") and decodes the payload.
func decodeDocumentBase64(raw string) ([]byte, error) {
	payload := raw
	if idx := strings.Index(payload, ","); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, domainerrors.ErrDocumentInvalid.WrapMessage("malformed base64 payload")
	}
	if len(data) == 0 {
		return nil, domainerrors.ErrDocumentInvalid.WrapMessage("empty document")
	}

	return data, nil
}
