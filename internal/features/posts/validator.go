package posts

import (
	"errors"
	"net/url"
	"strings"
)

// ValidateTitle validates the post title
func ValidateTitle(title string) error {
	title = strings.TrimSpace(title)
	if len(title) < 1 {
		return errors.New("title is required")
	}
	if len(title) > 200 {
		return errors.New("title cannot exceed 200 characters")
	}
	return nil
}

// ValidateExcerpt validates the post excerpt
func ValidateExcerpt(excerpt string) error {
	excerpt = strings.TrimSpace(excerpt)
	if len(excerpt) < 1 {
		return errors.New("excerpt is required")
	}
	if len(excerpt) > 300 {
		return errors.New("excerpt cannot exceed 300 characters")
	}
	return nil
}

// ValidateContent validates the post body
func ValidateContent(content string) error {
	if len(strings.TrimSpace(content)) < 1 {
		return errors.New("content is required")
	}
	return nil
}

// ValidateFeaturedImage validates the optional cover image URL
func ValidateFeaturedImage(imageURL string) error {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return nil
	}

	if !strings.HasPrefix(imageURL, "http://") && !strings.HasPrefix(imageURL, "https://") {
		return errors.New("featured image must be a valid URL")
	}

	parsed, err := url.Parse(imageURL)
	if err != nil || parsed.Host == "" {
		return errors.New("featured image must be a valid URL")
	}

	return nil
}

// SplitTags turns a comma-separated tag string into a cleaned slice,
// dropping empty entries.
func SplitTags(tags string) []string {
	result := []string{}
	for _, tag := range strings.Split(tags, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			result = append(result, tag)
		}
	}
	return result
}

// ValidateCreatePostRequest validates all fields in CreatePostRequest
func ValidateCreatePostRequest(req *CreatePostRequest) error {
	if err := ValidateTitle(req.Title); err != nil {
		return err
	}
	if err := ValidateExcerpt(req.Excerpt); err != nil {
		return err
	}
	if err := ValidateContent(req.Content); err != nil {
		return err
	}
	return ValidateFeaturedImage(req.FeaturedImage)
}

// ValidateUpdatePostRequest validates all non-nil fields in UpdatePostRequest
func ValidateUpdatePostRequest(req *UpdatePostRequest) error {
	if req.Title != nil {
		if err := ValidateTitle(*req.Title); err != nil {
			return err
		}
	}
	if req.Excerpt != nil {
		if err := ValidateExcerpt(*req.Excerpt); err != nil {
			return err
		}
	}
	if req.Content != nil {
		if err := ValidateContent(*req.Content); err != nil {
			return err
		}
	}
	if req.FeaturedImage != nil {
		if err := ValidateFeaturedImage(*req.FeaturedImage); err != nil {
			return err
		}
	}
	return nil
}
