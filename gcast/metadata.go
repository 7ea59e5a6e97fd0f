package gcast

import "net/url"

// MediaMetadata represents a generic media artifact.
//
// Ref: https://developers.google.com/cast/docs/reference/messages#GenericMediaMetadata
//      https://developers.google.com/cast/docs/reference/messages#Image
type MediaMetadata map[string]interface{}

// NewMediaMetadata returns generic metadata with the given title.
func NewMediaMetadata(title string) MediaMetadata {
	return MediaMetadata{"metadataType": 0, "title": title}
}

func (m MediaMetadata) str(k string) string {
	s, _ := m[k].(string)
	return s
}

// Title returns the descriptive title of the content.
func (m MediaMetadata) Title() string {
	return m.str("title")
}

// Subtitle returns the descriptive subtitle of the content.
func (m MediaMetadata) Subtitle() string {
	return m.str("subtitle")
}

// ImageURL returns the URL of the first image.
func (m MediaMetadata) ImageURL() *url.URL {
	images, _ := m["images"].([]interface{})
	if len(images) == 0 {
		return nil
	}

	img, _ := images[0].(map[string]interface{})
	raw, _ := img["url"].(string)
	if raw == "" {
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil
	}

	return u
}
