package gallery

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"
)

// DescribeThumb specifies which thumbnail to send to the model.
var DescribeThumb = "Cover"

var describePrompt = "Write one evocative sentence describing this photo theme for a " +
	"photography portfolio. Mention light, texture, or mood rather than listing objects. " +
	"No quotes, no hashtags, under 30 words."

// Describe drafts a theme description from its cover photo using a
// generative model.
func Describe(ctx context.Context, client *genai.Client, model string, t *Theme) (string, error) {
	if t.CoverPhoto == nil {
		return "", fmt.Errorf("theme %q has no cover photo", t.Title)
	}

	thumb := t.CoverPhoto.Resize[DescribeThumb].Path
	if thumb == "" {
		thumb = t.CoverPhoto.InPath
	}

	bs, err := os.ReadFile(thumb)
	if err != nil {
		return "", err
	}

	content := genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromBytes(bs, "image/jpeg"),
		genai.NewPartFromText(describePrompt),
	}, genai.RoleUser)

	resp, err := client.Models.GenerateContent(ctx, model, []*genai.Content{content}, nil)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	return strings.TrimSpace(resp.Text()), nil
}
