package storage

import (
	"fmt"

	"github.com/bwise1/trailhead_admin/config"
	"github.com/cloudinary/cloudinary-go/v2"
)

// Transformations applied to derive the media URL variants shown in the admin.
const (
	thumbnailTransformation = "c_fill,w_150,h_150"
	mediumTransformation    = "c_limit,w_800"
	largeTransformation     = "c_limit,w_1600"
)

type Cloudinary struct {
	CLD *cloudinary.Cloudinary
}

type URLVariants struct {
	Original  string
	Thumbnail string
	Medium    string
	Large     string
}

func NewCloudinary(cfg *config.Config) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true

	return &Cloudinary{CLD: cld}, nil
}

// Variants builds delivery URLs for an uploaded image.
func (c *Cloudinary) Variants(publicID string) (URLVariants, error) {
	if publicID == "" {
		return URLVariants{}, fmt.Errorf("public id cannot be empty")
	}

	var out URLVariants
	for _, v := range []struct {
		transformation string
		dst            *string
	}{
		{"", &out.Original},
		{thumbnailTransformation, &out.Thumbnail},
		{mediumTransformation, &out.Medium},
		{largeTransformation, &out.Large},
	} {
		img, err := c.CLD.Image(publicID)
		if err != nil {
			return URLVariants{}, fmt.Errorf("building image asset: %w", err)
		}
		img.Transformation = v.transformation
		u, err := img.String()
		if err != nil {
			return URLVariants{}, fmt.Errorf("building image url: %w", err)
		}
		*v.dst = u
	}
	return out, nil
}
