package util

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/twpayne/go-polyline"
)

var (
	RgxSlug = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	// scheme is optional, admins paste bare domains
	RgxLooseURL = regexp.MustCompile(`(?i)^(https?://)?([\da-z.-]+)\.([a-z.]{2,6})([/\w .-]*)*/?$`)
	rgxHTMLTag  = regexp.MustCompile(`<[^>]*>`)
	rgxSlugDrop = regexp.MustCompile(`[^a-z0-9\s-]`)
	rgxSpaces   = regexp.MustCompile(`\s+`)
	rgxDashes   = regexp.MustCompile(`-+`)
)

// StripHTML removes markup from rich text editor output.
func StripHTML(html string) string {
	return strings.TrimSpace(rgxHTMLTag.ReplaceAllString(html, ""))
}

// GenerateSlug turns a title into a url slug: "Ngong Hills  Hike!" -> "ngong-hills-hike".
func GenerateSlug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = rgxSlugDrop.ReplaceAllString(s, "")
	s = rgxSpaces.ReplaceAllString(s, "-")
	s = rgxDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func DecodePolyLines(shape string) ([][]float64, error) {
	decoded, _, err := polyline.DecodeCoords([]byte(shape))
	if err != nil {
		log.Println("error deocoding polyline: ", err)
		return nil, fmt.Errorf("failed to decode polyline %w", err)
	}
	return decoded, nil
}

// EncodePolyLine encodes [lat, lng] pairs with the default precision (1e5).
func EncodePolyLine(coords [][]float64) string {
	if len(coords) == 0 {
		return ""
	}
	return string(polyline.EncodeCoords(coords))
}

// IntPtr returns a pointer to the given integer.
func IntPtr(i int) *int {
	return &i
}

func Int64Ptr(i int64) *int64 {
	return &i
}

func Float64Ptr(f float64) *float64 {
	return &f
}
