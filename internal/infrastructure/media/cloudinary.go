// Package media resolves opaque picture references to public delivery URLs.
package media

import (
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"

	"github.com/pixelgram/social-api/internal/api/metrics"
)

// CloudinaryResolver implements ports.MediaResolver against Cloudinary.
// Resolution is pure URL construction from the public ID; no network call is
// made and nothing is cached on the user record.
type CloudinaryResolver struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryResolver builds a resolver from a CLOUDINARY_URL-style
// connection string (cloudinary://<api_key>:<api_secret>@<cloud_name>).
func NewCloudinaryResolver(cloudinaryURL string) (*CloudinaryResolver, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryResolver{cld: cld}, nil
}

// ResolveURL maps a stored public ID to its fully-qualified delivery URL.
func (r *CloudinaryResolver) ResolveURL(publicID string) (string, error) {
	img, err := r.cld.Image(publicID)
	if err != nil {
		metrics.MediaResolutionsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("cloudinary asset %q: %w", publicID, err)
	}
	url, err := img.String()
	if err != nil {
		metrics.MediaResolutionsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("cloudinary url %q: %w", publicID, err)
	}
	metrics.MediaResolutionsTotal.WithLabelValues("resolved").Inc()
	return url, nil
}
